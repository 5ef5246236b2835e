package prompt

import (
	"context"
	"encoding/json"

	"github.com/amazing83/easy-dataset/dataset"
)

// LabelReviseParams are the inputs for incremental domain-tree revision.
type LabelReviseParams struct {
	// Text is the table-of-contents overview of all current literature.
	Text string

	// ExistingTags is the current domain tree to revise.
	ExistingTags []dataset.TagNode

	// DeletedContent is the TOC of removed literature. Empty omits the
	// deleted-content section entirely.
	DeletedContent string

	// NewContent is the TOC of newly added literature. Empty omits the
	// new-content section entirely.
	NewContent string
}

// LabelRevise builds the domain-tree revision prompt. The existing tree
// is embedded as indented JSON; the deleted/new content sections are
// rendered with per-language headings only when their text is non-empty.
func (b *Builder) LabelRevise(ctx context.Context, projectID string, lang Language, p LabelReviseParams) string {
	existing, err := json.MarshalIndent(p.ExistingTags, "", "  ")
	if err != nil {
		// TagNode marshaling cannot fail; keep the prompt well-formed anyway.
		existing = []byte("[]")
	}

	var deleted, added string
	if p.DeletedContent != "" {
		if lang == LangEN {
			deleted = "## Deleted Content \n Here are the table of contents from the deleted literature:\n " + p.DeletedContent
		} else {
			deleted = "## 被删除的内容 \n 以下是本次要删除的文献目录信息：\n " + p.DeletedContent
		}
	}
	if p.NewContent != "" {
		if lang == LangEN {
			added = "## New Content \n Here are the table of contents from the newly added literature:\n " + p.NewContent
		} else {
			added = "## 新增的内容 \n 以下是本次新增的文献目录信息：\n " + p.NewContent
		}
	}

	tpl := b.template(ctx, projectID, TypeLabelRevise, KeyLabelRevisePrompt, lang)
	return Render(tpl, Values{
		"existingTags":   string(existing),
		"text":           p.Text,
		"deletedContent": deleted,
		"newContent":     added,
	})
}
