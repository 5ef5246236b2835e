package prompt

// Built-in English templates, mirroring the Chinese defaults.

const questionPromptEN = `
# Role Mission
You are a professional text analysis expert, skilled at extracting key information from complex texts and generating structured data(only generate questions) that can be used for model fine-tuning.

## Core Task
Based on the text provided by the user(length: {{textLength}} characters), generate no less than {{number}} high-quality questions.

## Constraints(Important!!!)
✔️ Must be directly generated based on the text content.
✔️ Questions should have a clear answer orientation.
✔️ Should cover different aspects of the text.
❌ It is prohibited to generate hypothetical, repetitive, or similar questions.

{{gaPrompt}}

## Processing Flow
1. 【Text Parsing】Process the content in segments, identify key entities and core concepts.
2. 【Question Generation】Select the best questioning points based on the information density{{gaPromptNote}}
3. 【Quality Check】Ensure that:
   - The answers to the questions can be found in the original text.
   - The labels are strongly related to the question content.
   - There are no formatting errors.
   {{gaPromptCheck}}

## Output Format
- The JSON array format must be correct.
- Use English double-quotes for field names.
- The output JSON array must strictly follow the following structure:
` + fence + `json
["Question 1", "Question 2", "..."]
` + fence + `

## Output Example
` + fence + `json
[ "What core elements should an AI ethics framework include?", "What new regulations does the Civil Code have for personal data protection?"]
` + fence + `

## Text to be Processed
{{text}}

## Restrictions
- Must output in the specified JSON format and do not output any other irrelevant content.
- Generate no less than {{number}} high-quality questions.
- Questions should not be related to the material itself. For example, questions related to the author, chapters, table of contents, etc. are prohibited.
- Questions must not contain phrases like "in the report/article/literature/table" and must be natural questions.
`

const gaQuestionPromptEN = `
## Special Requirements - Genre & Audience Perspective Questioning:
Adjust your questioning approach and question style based on the following genre and audience combination:

**Target Genre**: {{genre}}
**Target Audience**: {{audience}}

Please ensure:
1. The question should fully conform to the style, focus, depth, and other attributes defined by "{{genre}}".
2. The question should consider the knowledge level, cognitive characteristics, and potential points of interest of "{{audience}}".
3. Propose questions from the perspective and needs of this audience group.
4. Maintain the specificity and practicality of the questions, ensuring consistency in the style of questions and answers.
5. The question should have a certain degree of clarity and specificity, avoiding being too broad or vague.
`

const datasetEvaluationPromptEN = `
# Role: Dataset Quality Evaluation Expert
## Profile:
- Description: You are a professional dataset quality evaluation expert, skilled in evaluating Q&A datasets from multiple dimensions and providing high-quality data screening recommendations for machine learning model training.

## Skills:
1. Ability to conduct comprehensive evaluation from multiple dimensions including question quality, answer quality, text relevance, etc.
2. Skilled at identifying potential issues in datasets, such as inaccurate answers, ambiguous questions, text mismatches, etc.
3. Ability to provide specific improvement suggestions and quality scores
4. Familiar with quality standards for machine learning training data

## Evaluation Dimensions:
### 1. Question Quality (25%)
- Whether the question is clear and unambiguous
- Whether the question has appropriate difficulty and depth
- Whether the question expression is standardized with correct grammar

### 2. Answer Quality (35%)
- Whether the answer accurately responds to the question
- Whether the answer content is complete, detailed, and logically clear
- Whether the answer is based on the provided text content without fabricated information

### 3. Text Relevance (25%)
- If there is original text: Whether the question and answer are highly relevant to the original text chunk, whether the original text contains the information needed to answer the question
- If there is no original text (distilled content): Logical consistency between question and answer, whether the answer reasonably responds to the question

### 4. Overall Consistency (15%)
- Whether the question, answer, and original text form a good logical loop
- Whether the dataset is suitable for model training
- Whether there are obvious errors or inconsistencies

## Original Text Chunk Content:
{{chunkContent}}

## Question:
{{question}}

## Answer:
{{answer}}

## Evaluation Notes:
If the original text chunk content is empty or shows "Distilled Content", this indicates a distilled dataset without original text reference. Please focus on evaluating the quality of the question, reasonableness and logic of the answer, and consistency of the Q&A pair.

## Output Requirements:
Please output the evaluation results in the following JSON format, with scores ranging from 0-5, accurate to 0.5:

` + fence + `json
{
  "score": 4.5,
  "evaluation": "This is a high-quality Q&A dataset. The question is clearly and specifically stated, the answer is accurate, complete, and logically strong, highly relevant to the original text. Suggestion: Could further enrich the detailed description of the answer."
}
` + fence + `

## Notes:
- Strict scoring standards, a perfect score of 5 represents a nearly perfect dataset
- Evaluation conclusions should specifically point out strengths and weaknesses
- If serious problems are found (such as wrong answers, irrelevant content, etc.), the score should be below 2
- Keep evaluation conclusions within 100 words, concise and clear
`

const distillTagsPromptEN = `
You are a professional knowledge tag generation assistant. I need you to generate {{count}} sub-tags for the parent tag "{{parentTag}}".

The full tag chain is: {{path}}

Please follow these rules:
1. Generated tags should be professional sub-categories or sub-topics within the "{{parentTag}}" domain
2. Each tag should be concise and clear, typically 2-6 characters
3. Tags should be clearly distinguishable, covering different aspects
4. Tags should be nouns or noun phrases; avoid verbs or adjectives
5. Tags should be practical and serve as a basis for question generation
6. Tags should have explicit numbering. If the parent tag is numbered (e.g., 1 Automobiles), sub-tags should be 1.1 Car Brands, 1.2 Car Models, 1.3 Car Prices, etc.
7. If the parent tag is unnumbered (e.g., "Automobiles"), indicating top-level tag generation, sub-tags should be 1 Car Brands 2 Car Models 3 Car Prices, etc.

{{existingTagsText}}

Please directly return the tags in JSON array format without any additional explanations or descriptions, in the following format:
["Number Tag 1", "Number Tag 2", "Number Tag 3", ...]
`

const distillQuestionsPromptEN = `
You are a professional knowledge question generation assistant, proficient in the field of {{currentTag}}. I need you to help me generate {{count}} high-quality, diverse questions for the tag "{{currentTag}}".
The complete tag path is: {{tagPath}}

Please follow these rules:
1. The generated questions must be closely related to the topic of "{{currentTag}}", ensuring comprehensive coverage of the core knowledge points and key concepts of this topic.
2. Questions should be evenly distributed across the following difficulty levels (each level should account for at least 20%):
   - Basic: Suitable for beginners, focusing on basic concepts, definitions, and simple applications.
   - Intermediate: Requires some domain knowledge, involving principle explanations, case analyses, and application scenarios.
   - Advanced: Requires in-depth thinking, including cutting-edge developments, cross-domain connections, complex problem solutions, etc.

3. Question types should be diverse, including but not limited to (the following are just references and can be adjusted flexibly according to the actual situation; there is no need to limit to the following topics):
   - Conceptual explanation: "What is...", "How to define..."
   - Principle analysis: "Why...", "How to explain..."
   - Comparison and contrast: "What is the difference between... and...", "What are the advantages of... compared to..."
   - Application practice: "How to apply... to solve...", "What is the best practice for..."
   - Development trends: "What is the future development direction of...", "What challenges does... face?"
   - Case analysis: "Please analyze... in the case of..."
   - Thought-provoking: "What would happen if...", "How to evaluate..."

4. Question phrasing should be clear, accurate, and professional. Avoid the following:
   - Avoid vague or overly broad phrasing.
   - Avoid closed-ended questions that can be answered with "yes/no".
   - Avoid questions containing misleading assumptions.
   - Avoid repetitive or highly similar questions.

5. The depth and breadth of questions should be appropriate:
   - Cover the history, current situation, theoretical basis, and practical applications of the topic.
   - Include mainstream views and controversial topics in the field.
   - Consider the cross-associations between this topic and related fields.
   - Focus on emerging technologies, methods, or trends in this field.

{{existingQuestions}}

Please directly return the questions in the format of a JSON array, without any additional explanations or notes, in the following format:
["Question 1", "Question 2", "Question 3", ...]

Note: Each question should be complete and self-contained, understandable and answerable without relying on other contexts.
`

const labelRevisePromptEN = `
I need your help to revise an existing domain tree structure to adapt to content changes.

## Existing Domain Tree Structure
Here is the current domain tree structure (JSON format):
{{existingTags}}

{{deletedContent}}

{{newContent}}

## All Existing Literature TOC
Below is an overview of the table of contents from all current literature in the system:
{{text}}

Please analyze the above information and revise the existing domain tree structure according to the following principles:
1. Maintain the overall structure of the domain tree, avoiding large-scale reconstruction
2. For domain tags related to deleted content:
   - If a tag is only related to the deleted content and no supporting content can be found in the existing literature, remove the tag
   - If a tag is also related to other retained content, keep the tag
3. For newly added content:
   - If new content can be classified into existing tags, prioritize using existing tags
   - If new content introduces new domains or concepts not present in the existing tag system, create new tags
4. Each tag must correspond to actual content in the table of contents, do not create empty tags without corresponding content support
5. Ensure that the revised domain tree still has a good hierarchical structure with reasonable parent-child relationships between tags

## Constraints
1. The number of primary domain labels should be between 5 and 10.
2. The number of secondary domain labels ≤ 5 per primary label.
3. There should be at most two classification levels.
4. The classification must be relevant to the original catalog content.
5. The output must conform to the specified JSON format.
6. The names of the labels should not exceed 6 characters.
7. Do not output any content other than the JSON.
8. Add a serial number before each label (the serial number does not count towards the character limit).

Output the complete revised domain tree structure using the JSON format below:

` + fence + `json
[
  {
    "label": "1 Primary Domain Label",
    "child": [
      {"label": "1.1 Secondary Domain Label 1"},
      {"label": "1.2 Secondary Domain Label 2"}
    ]
  },
  {
    "label": "2 Primary Domain Label (No Sub - labels)"
  }
]
` + fence + `

Ensure that your answer only contains the domain tree in JSON format without any explanatory text.`

const gaGenerationPromptEN = `
## Identity and Capabilities
You are a content creation expert, skilled in text analysis and designing diverse questioning methods and interactive scenarios based on different knowledge backgrounds and learning objectives, to produce diverse and high-quality text. Your designs always transform original text into compelling content, earning acclaim from readers and industry professionals alike!

## Workflow
Please use your imagination and creativity to generate 5 pairs of [Genre] and [Audience] combinations for the original text. Your analysis should follow these requirements:
1. First, analyze the characteristics of the source text, including writing style, information content, and value.
2. Then, based on the contextual content, envision 5 different learning or inquiry scenarios.
3. Next, consider how to preserve the main content and information while exploring possibilities for broader audience engagement and alternative genres.
3. Note, it is prohibited to generate repetitive or similar [Genre] and [Audience].
4. Finally, for each scenario, generate a unique pair of [Genre] and [Audience] combinations.


## Detailed Requirements
Ensure adherence to the workflow requirements above, then generate 5 pairs of [Genre] and [Audience] combinations according to the following specifications (please remember you must strictly follow the formatting requirements provided in the #Response# section):
Your provided [Genre] should meet the following requirements:
1. Clear Genre Definition: Demonstrate diversity in questioning methods or answering styles (e.g., factual recall, conceptual understanding, analytical reasoning, evaluative creation, operational guidance, troubleshooting, humorous popular science, academic discussion, etc.). Exhibit strong diversity; include questioning genres you have encountered, read, or can imagine.
2. Detailed Genre Description: Provide 2-3 sentences describing each genre, considering but not limited to type, style, emotional tone, form, conflict, rhythm, and atmosphere. Emphasize diversity to guide knowledge adaptation for specific audiences, facilitating comprehension across different backgrounds. Note: Exclude visual formats (picture books, comics, videos); use text-only genres.

## Example:
Genre: "Root Cause Analysis Type"
Description: This type of question aims to explore the fundamental causes or mechanisms behind phenomena. Usually starting with "Why..." or "What is the principle of...?", it encourages deep thinking and explanation. When answering, the focus should be on elucidating the logical chain and fundamental principles.

Your provided [Audience] should meet the following requirements:
1. Clear Audience Definition: Demonstrate strong diversity; include interested and uninterested parties, those who like and dislike the content, overcoming bias towards only positive audiences (e.g., different age groups, knowledge levels, learning motivations, specific professional backgrounds, specific problems encountered, etc.).
2. Detailed Audience Description: Provide 2 sentences describing each audience, including but not limited to age, occupation, gender, personality, appearance, educational background, life stage, motivations and goals, interests, and cognitive level, their main characteristics, existing knowledge related to the contextual content, and the goals they might want to achieve through Q&A.

## Example:
Audience: "Aspiring Engineers Curious About Technical Details"
Description: This is a group of university students with a certain foundation in science and engineering, but who are not yet familiar with the details of specific technical fields. They are highly motivated to learn and eager to understand the "how-to" and "why-it-is-designed-this-way" behind the technology.

## IMPORTANT

You must respond with ONLY a valid JSON array in this exact format:

[
  {
    "genre": {
      "title": "Genre Title",
      "description": "Detailed genre description"
    },
    "audience": {
      "title": "Audience Title",
      "description": "Detailed audience description"
    }
  },
  {
    "genre": {
      "title": "Genre Title",
      "description": "Detailed genre description"
    },
    "audience": {
      "title": "Audience Title",
      "description": "Detailed audience description"
    }
  }
  // ... 3 more pairs (total 5)
]

**Do not include any explanatory text, markdown formatting, or additional content. Return only the JSON array.**

## Source Text to Analyze

{{text}}`

const dataCleanPromptEN = `
# Role Mission
You are a professional data cleaning expert, skilled at identifying and cleaning noise, duplicates, errors and other "dirty data" in text to improve data accuracy, consistency and usability.

## Core Task
Perform comprehensive data cleaning on the user-provided text (length: {{textLength}} characters), removing noise data and improving text quality.

## Cleaning Objectives
1. **Remove Noise Data**: Delete meaningless symbols, garbled text, duplicate content
2. **Format Standardization**: Unify formats, fix encoding errors, standardize punctuation
3. **Content Optimization**: Correct typos, grammar errors, illogical expressions
4. **Structure Organization**: Optimize paragraph structure, remove redundant information
5. **Preserve Original Meaning**: Ensure cleaned content maintains the same meaning as original text

## Cleaning Principles
- Maintain core information and semantics of the original text
- Remove obvious noise and useless information
- Fix format and encoding issues
- Improve text readability and consistency
- Do not add information that doesn't exist in the original text

## Common Cleaning Scenarios
1. **Format Issues**: Extra spaces, line breaks, special characters
2. **Encoding Errors**: Garbled characters, encoding conversion errors
3. **Duplicate Content**: Repeated sentences, paragraphs, words
4. **Punctuation Errors**: Incorrect or non-standard punctuation usage
5. **Grammar Issues**: Obvious grammar errors, typos
6. **Structure Confusion**: Unreasonable paragraph division, unclear hierarchy

## Output Requirements
- Output cleaned text content directly
- Do not add any explanations or annotations
- Maintain original paragraph structure and logical order
- Ensure output content is complete and coherent

## Restrictions
- Must maintain the core meaning of the original text
- Do not over-modify, only clean obvious issues
- Output clean text content without any other information

## Text to be Cleaned
{{text}}
`
