package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amazing83/easy-dataset/dataset"
	"github.com/amazing83/easy-dataset/pipeline"
	"github.com/amazing83/easy-dataset/prompt"
)

// readText reads the operation input from a file argument or stdin.
func readText(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// printJSON writes the result as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func newEvaluateCmd(flags *rootFlags) *cobra.Command {
	var (
		question  string
		answer    string
		chunkFile string
		distilled bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a question/answer record against its source chunk",
		RunE: func(cmd *cobra.Command, args []string) error {
			if question == "" || answer == "" {
				return fmt.Errorf("--question and --answer are required")
			}

			var chunk string
			if chunkFile != "" {
				data, err := os.ReadFile(chunkFile)
				if err != nil {
					return fmt.Errorf("read chunk file: %w", err)
				}
				chunk = string(data)
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.service.Evaluate(cmd.Context(), pipeline.EvaluateInput{
				ChunkContent: chunk,
				Distilled:    distilled,
				Question:     question,
				Answer:       answer,
			})
			if err != nil {
				return err
			}

			return printJSON(struct {
				Score      float64           `json:"score"`
				Band       dataset.ScoreBand `json:"band"`
				Evaluation string            `json:"evaluation"`
			}{result.Score, dataset.BandForScore(result.Score), result.Evaluation})
		},
	}

	cmd.Flags().StringVarP(&question, "question", "q", "", "Question to evaluate")
	cmd.Flags().StringVarP(&answer, "answer", "a", "", "Answer to evaluate")
	cmd.Flags().StringVar(&chunkFile, "chunk-file", "", "Source chunk file (empty = no-reference mode)")
	cmd.Flags().BoolVar(&distilled, "distilled", false, "Mark the record as distilled content")
	return cmd
}

func newQuestionsCmd(flags *rootFlags) *cobra.Command {
	var (
		number   int
		genre    string
		audience string
	)

	cmd := &cobra.Command{
		Use:   "questions [file]",
		Short: "Generate questions from a text chunk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			ga := prompt.GAPair{}
			if genre != "" || audience != "" {
				if genre == "" || audience == "" {
					return fmt.Errorf("--genre and --audience must be set together")
				}
				ga = prompt.GAPair{Active: true, Genre: genre, Audience: audience}
			}

			questions, err := a.service.GenerateQuestions(cmd.Context(), pipeline.QuestionInput{
				Text:   text,
				Number: number,
				GA:     ga,
			})
			if err != nil {
				return err
			}
			return printJSON(questions)
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", 0, "Question count (0 = derive from text length)")
	cmd.Flags().StringVar(&genre, "genre", "", "Genre framing for the questions")
	cmd.Flags().StringVar(&audience, "audience", "", "Audience framing for the questions")
	return cmd
}

func newGACmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ga [file]",
		Short: "Generate five genre/audience pairs for a text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			pairs, err := a.service.GenerateGA(cmd.Context(), text)
			if err != nil {
				return err
			}
			return printJSON(pairs)
		},
	}
}

func newDistillTagsCmd(flags *rootFlags) *cobra.Command {
	var (
		parentTag string
		tagPath   string
		existing  []string
		count     int
	)

	cmd := &cobra.Command{
		Use:   "distill-tags",
		Short: "Generate sub-tags under a parent topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if parentTag == "" {
				return fmt.Errorf("--parent is required")
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			tags, err := a.service.DistillTags(cmd.Context(), prompt.DistillTagsParams{
				TagPath:      tagPath,
				ParentTag:    parentTag,
				ExistingTags: existing,
				Count:        count,
			})
			if err != nil {
				return err
			}
			return printJSON(tags)
		},
	}

	cmd.Flags().StringVar(&parentTag, "parent", "", "Parent tag to distill under")
	cmd.Flags().StringVar(&tagPath, "path", "", "Full tag chain (e.g. \"知识库->体育\")")
	cmd.Flags().StringArrayVar(&existing, "existing", nil, "Already-created sub-tags (repeatable)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Sub-tag count (0 = default)")
	return cmd
}

func newDistillQuestionsCmd(flags *rootFlags) *cobra.Command {
	var (
		currentTag string
		tagPath    string
		existing   []string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "distill-questions",
		Short: "Generate questions for a leaf tag without source text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if currentTag == "" {
				return fmt.Errorf("--tag is required")
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			questions, err := a.service.DistillQuestions(cmd.Context(), prompt.DistillQuestionsParams{
				TagPath:           tagPath,
				CurrentTag:        currentTag,
				Count:             count,
				ExistingQuestions: existing,
			})
			if err != nil {
				return err
			}
			return printJSON(questions)
		},
	}

	cmd.Flags().StringVar(&currentTag, "tag", "", "Leaf tag to generate questions for")
	cmd.Flags().StringVar(&tagPath, "path", "", "Full tag chain to the leaf")
	cmd.Flags().StringArrayVar(&existing, "existing", nil, "Already-generated questions (repeatable)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Question count (0 = default)")
	return cmd
}

func newReviseTreeCmd(flags *rootFlags) *cobra.Command {
	var (
		treeFile    string
		deletedFile string
		newFile     string
	)

	cmd := &cobra.Command{
		Use:   "revise-tree [toc-file]",
		Short: "Revise the domain tag tree against changed literature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}

			var tree []dataset.TagNode
			if treeFile != "" {
				data, err := os.ReadFile(treeFile)
				if err != nil {
					return fmt.Errorf("read tree file: %w", err)
				}
				if err := json.Unmarshal(data, &tree); err != nil {
					return fmt.Errorf("parse tree file: %w", err)
				}
			}

			readOptional := func(path string) (string, error) {
				if path == "" {
					return "", nil
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return "", err
				}
				return string(data), nil
			}

			deleted, err := readOptional(deletedFile)
			if err != nil {
				return fmt.Errorf("read deleted-content file: %w", err)
			}
			added, err := readOptional(newFile)
			if err != nil {
				return fmt.Errorf("read new-content file: %w", err)
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			revised, err := a.service.ReviseTree(cmd.Context(), prompt.LabelReviseParams{
				Text:           text,
				ExistingTags:   tree,
				DeletedContent: deleted,
				NewContent:     added,
			})
			if err != nil {
				return err
			}
			return printJSON(revised)
		},
	}

	cmd.Flags().StringVar(&treeFile, "tree-file", "", "Current domain tree (JSON)")
	cmd.Flags().StringVar(&deletedFile, "deleted-file", "", "TOC of removed literature")
	cmd.Flags().StringVar(&newFile, "new-file", "", "TOC of newly added literature")
	return cmd
}

func newCleanCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [file]",
		Short: "Remove noise from raw chunk text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			cleaned, err := a.service.Clean(cmd.Context(), text)
			if err != nil {
				return err
			}

			fmt.Println(cleaned)
			return nil
		},
	}
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		promptType string
		promptKey  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a resolved prompt template with placeholders intact",
		Long: `Render resolves a template through the project override chain and
prints it without substituting placeholders. Useful for inspecting what
a project's customized prompts actually look like.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptType == "" || promptKey == "" {
				return fmt.Errorf("--type and --key are required")
			}

			a, err := setup(flags)
			if err != nil {
				return err
			}
			defer a.close()

			tpl, err := a.builder.Template(cmd.Context(), a.cfg.Project.ID,
				prompt.PromptType(promptType), promptKey, a.lang)
			if err != nil {
				return err
			}

			fmt.Println(strings.TrimRight(tpl, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&promptType, "type", "t", "", "Prompt type (question, datasetEvaluation, ...)")
	cmd.Flags().StringVarP(&promptKey, "key", "k", "", "Template key (QUESTION_PROMPT, ...)")
	return cmd
}
