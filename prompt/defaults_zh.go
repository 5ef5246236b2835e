package prompt

// fence is the markdown code-fence marker. The default templates embed
// fenced JSON examples, and backticks cannot appear inside Go raw string
// literals, so templates are assembled by concatenation.
const fence = "```"

// Built-in Chinese templates. Texts are the curation defaults shipped with
// the app; projects customize them through override records, never by
// editing these constants.

const questionPromptZH = `
# 角色使命
你是一位专业的文本分析专家，擅长从复杂文本中提取关键信息并生成可用于模型微调的结构化数据（仅生成问题）。

## 核心任务
根据用户提供的文本（长度：{{textLength}} 字），生成不少于 {{number}} 个高质量问题。

## 约束条件（重要！！！）
- 必须基于文本内容直接生成
- 问题应具有明确答案指向性
- 需覆盖文本的不同方面
- 禁止生成假设性、重复或相似问题

{{gaPrompt}}

## 处理流程
1. 【文本解析】分段处理内容，识别关键实体和核心概念
2. 【问题生成】基于信息密度选择最佳提问点{{gaPromptNote}}
3. 【质量检查】确保：
   - 问题答案可在原文中找到依据
   - 标签与问题内容强相关
   - 无格式错误
   {{gaPromptCheck}}

## 输出格式
- JSON 数组格式必须正确
- 字段名使用英文双引号
- 输出的 JSON 数组必须严格符合以下结构：
` + fence + `json
["问题1", "问题2", "..."]
` + fence + `

## 输出示例
` + fence + `json
[ "人工智能伦理框架应包含哪些核心要素？","民法典对个人数据保护有哪些新规定？"]
` + fence + `

## 待处理文本
{{text}}

## 限制
- 必须按照规定的 JSON 格式输出，不要输出任何其他不相关内容
- 生成不少于{{number}}个高质量问题
- 问题不要和材料本身相关，例如禁止出现作者、章节、目录等相关问题
- 问题不得包含【报告、文章、文献、表格】中提到的这种话术，必须是一个自然的问题
`

const gaQuestionPromptZH = `
## 特殊要求-体裁与受众视角提问：
请根据以下体裁与受众组合，调整你的提问角度和问题风格：

**目标体裁**: {{genre}}
**目标受众**: {{audience}}

请确保：
1. 问题应完全符合「{{genre}}」所定义的风格、焦点和深度等等属性。
2. 问题应考虑到「{{audience}}」的知识水平、认知特点和潜在兴趣点。
3. 从该受众群体的视角和需求出发提出问题
4. 保持问题的针对性和实用性，确保问题-答案的风格一致性
5. 问题应具有一定的清晰度和具体性，避免过于宽泛或模糊。
`

const datasetEvaluationPromptZH = `
# Role: 数据集质量评估专家
## Profile:
- Description: 你是一名专业的数据集质量评估专家，擅长从多个维度对问答数据集进行质量评估，为机器学习模型训练提供高质量的数据筛选建议。

## Skills:
1. 能够从问题质量、答案质量、文本相关性等多个维度进行综合评估
2. 擅长识别数据集中的潜在问题，如答案不准确、问题模糊、文本不匹配等
3. 能够给出具体的改进建议和质量评分
4. 熟悉机器学习训练数据的质量标准

## 评估维度:
### 1. 问题质量 (25%)
- 问题是否清晰明确，没有歧义
- 问题是否具有适当的难度和深度
- 问题表达是否规范，语法是否正确

### 2. 答案质量 (35%)
- 答案是否准确回答了问题
- 答案内容是否完整、详细、逻辑清晰
- 答案是否基于提供的文本内容，没有虚构信息

### 3. 文本相关性 (25%)
- 如果有原始文本：问题和答案是否与原始文本块高度相关，原始文本是否包含回答问题所需的信息
- 如果没有原始文本（蒸馏内容）：问题和答案的逻辑一致性，答案是否合理回答了问题

### 4. 整体一致性 (15%)
- 问题、答案、原始文本三者之间是否形成良好的逻辑闭环
- 数据集是否适合用于模型训练
- 是否存在明显的错误或不一致

## 原始文本块内容:
{{chunkContent}}

## 问题:
{{question}}

## 答案:
{{answer}}

## 评估说明:
如果原始文本块内容为空或显示"Distilled Content"，说明这是一个蒸馏数据集，没有原始文本参考。请重点评估问题的质量、答案的合理性和逻辑性，以及问答的一致性。

## 输出要求:
请按照以下JSON格式输出评估结果，评分范围为0-5分，精确到0.5分：

` + fence + `json
{
  "score": 4.5,
  "evaluation": "这是一个高质量的问答数据集。问题表述清晰具体，答案准确完整且逻辑性强，与原始文本高度相关。建议：可以进一步丰富答案的细节描述。"
}
` + fence + `

## 注意事项:
- 评分标准严格，满分5分代表近乎完美的数据集
- 评估结论要具体指出优点和不足
- 如果发现严重问题（如答案错误、文不对题等），评分应在2分以下
- 评估结论控制在100字以内，简洁明了
`

const distillTagsPromptZH = `
你是一个专业的知识标签生成助手。我需要你帮我为主题"{{parentTag}}"生成{{count}}个子标签。

标签完整链路是：{{path}}

请遵循以下规则：
1. 生成的标签应该是"{{parentTag}}"领域内的专业子类别或子主题
2. 每个标签应该简洁、明确，通常为2-6个字
3. 标签之间应该有明显的区分，覆盖不同的方面
4. 标签应该是名词或名词短语，不要使用动词或形容词
5. 标签应该具有实用性，能够作为问题生成的基础
6. 标签应该有明显的序号，主题为 1 汽车，子标签应该为 1.1 汽车品牌，1.2 汽车型号，1.3 汽车价格等
7. 若主题没有序号，如汽车，说明当前在生成顶级标签，子标签应为 1 汽车品牌 2 汽车型号 3 汽车价格等

{{existingTagsText}}

请直接以JSON数组格式返回标签，不要有任何额外的解释或说明，格式如下：
["序号 标签1", "序号 标签2", "序号 标签3", ...]
`

const distillQuestionsPromptZH = `
你是一个专业的知识问题生成助手，精通{{currentTag}}领域的知识。我需要你帮我为标签"{{currentTag}}"生成{{count}}个高质量、多样化的问题。

标签完整链路是：{{tagPath}}

请遵循以下规则：
1. 生成的问题必须与"{{currentTag}}"主题紧密相关，确保全面覆盖该主题的核心知识点和关键概念
2. 问题应该均衡分布在以下难度级别(每个级别至少占20%):
   - 基础级：适合入门者，关注基本概念、定义和简单应用
   - 中级：需要一定领域知识，涉及原理解释、案例分析和应用场景
   - 高级：需要深度思考，包括前沿发展、跨领域联系、复杂问题解决方案等

3. 问题类型应多样化，包括但不限于（以下只是参考，可以根据实际情况灵活调整，不一定要限定下面的主题）：
   - 概念解释类："什么是..."、"如何定义..."
   - 原理分析类："为什么..."、"如何解释..."
   - 比较对比类："...与...有何区别"、"...相比...的优势是什么"
   - 应用实践类："如何应用...解决..."、"...的最佳实践是什么"
   - 发展趋势类："...的未来发展方向是什么"、"...面临的挑战有哪些"
   - 案例分析类："请分析...案例中的..."
   - 启发思考类："如果...会怎样"、"如何评价..."

4. 问题表述要清晰、准确、专业，避免以下问题：
   - 避免模糊或过于宽泛的表述
   - 避免可以简单用"是/否"回答的封闭性问题
   - 避免包含误导性假设的问题
   - 避免重复或高度相似的问题

5. 问题的深度和广度要适当（以下只是参考，可以根据实际情况灵活调整，不一定要限定下面的主题）：
   - 覆盖主题的历史、现状、理论基础和实际应用
   - 包含该领域的主流观点和争议话题
   - 考虑该主题与相关领域的交叉关联
   - 关注该领域的新兴技术、方法或趋势

{{existingQuestions}}

请直接以JSON数组格式返回问题，不要有任何额外的解释或说明，格式如下：

["问题1", "问题2", "问题3", ...]

注意：每个问题应该是完整的、自包含的，无需依赖其他上下文即可理解和回答。
`

const labelRevisePromptZH = `
我需要你帮我修订一个已有的领域树结构，使其能够适应内容的变化。

## 之前的领域树结构
以下是之前完整的领域树结构（JSON格式）：
{{existingTags}}

## 之前完整文献的目录
以下是当前系统中所有文献的目录结构总览：
{{text}}

{{deletedContent}}

{{newContent}}

## 要求
请分析上述信息，修订现有的领域树结构，遵循以下原则：
1. 保持领域树的总体结构稳定，避免大规模重构
2. 对于删除的内容相关的领域标签：
   - 如果某个标签仅与删除的内容相关，且在现有文献中找不到相应内容支持，则移除该标签
   - 如果某个标签同时与其他保留的内容相关，则保留该标签
3. 对于新增的内容：
   - 如果新内容可以归类到现有的标签中，优先使用现有标签
   - 如果新内容引入了现有标签体系中没有的新领域或概念，再创建新的标签
4. 每个标签必须对应目录结构中的实际内容，不要创建没有对应内容支持的空标签
5. 确保修订后的领域树仍然符合良好的层次结构，标签间具有合理的父子关系

## 限制
1. 一级领域标签数量5-10个
2. 二级领域标签数量1-10个
3. 最多两层分类层级
4. 分类必须与原始目录内容相关
5. 输出必须符合指定 JSON 格式，不要输出 JSON 外其他任何不相关内容
6. 标签的名字最多不要超过 6 个字
7. 在每个标签前加入序号（序号不计入字数）

## 输出格式
最终输出修订后的完整领域树结构，使用下面的JSON格式：

` + fence + `json
[
  {
    "label": "1 一级领域标签",
    "child": [
      {"label": "1.1 二级领域标签1"},
      {"label": "1.2 二级领域标签2"}
    ]
  },
  {
    "label": "2 一级领域标签(无子标签)"
  }
]
` + fence + `

确保你的回答中只包含JSON格式的领域树，不要有其他解释性文字。`

const gaGenerationPromptZH = `
## 身份与能力
你是一位内容创作专家，擅长文本分析和根据不同的知识背景和学习目标，设计多样化的提问方式和互动场景，以产出多样化且高质量的文本。你的设计总能将原文转化为引人注目的内容，赢得了读者和行业专业人士的一致好评！

## 工作流程
请发挥你的想象力和创造力，为原始文本生成5对[体裁]和[受众]的组合。你的分析应遵循以下要求：
1. 首先，分析源文本的特点，包括写作风格、信息含量和价值。
2. 然后，基于上下文内容，设想5种不同的学习或探究场景。
3. 其次，要思考如何在保留主要内容和信息的同时，探索更广泛的受众参与和替代体裁的可能性。
3. 注意，禁止生成重复或相似的[体裁]和[受众]。
4. 最后，为每个场景生成一对独特的 [体裁] 和 [受众] 组合。


## 详细要求
确保遵循上述工作流程要求，然后根据以下规范生成5对[体裁]和[受众]组合（请记住您必须严格遵循#回复#部分中提供的格式要求）：
您提供的[体裁]应满足以下要求：
1. 明确的体裁定义：体现出提问方式或回答风格的多样性（例如：事实回忆、概念理解、分析推理、评估创造、操作指导、故障排除、幽默科普、学术探讨等）。要表现出强烈的多样性；包括您遇到过的、阅读过的或能够想象的提问体裁
2. 详细的体裁描述：提供2-3句描述每种体裁的话，考虑但不限于类型、风格、情感基调、形式、冲突、节奏和氛围。强调多样性以指导针对特定受众的知识适应，促进不同背景的理解。注意：排除视觉格式（图画书、漫画、视频）；使用纯文本体裁。
## 示例：
体裁："深究原因型"
描述：这类问题旨在探究现象背后的根本原因或机制。通常以"为什么..."或"...的原理是什么？"开头，鼓励进行深度思考和解释。回答时应侧重于逻辑链条和根本原理的阐述。

您提供的[受众]应满足以下要求：
1. 明确的受众定义：表现出强烈的多样性；包括感兴趣和不感兴趣的各方，喜欢和不喜欢内容的人，克服仅偏向积极受众的偏见（例如：不同年龄段、知识水平、学习动机、特定职业背景、遇到的具体问题等）
2. 详细的受众描述：提供2句描述每个受众的话，包括但不限于年龄、职业、性别、个性、外貌、教育背景、生活阶段、动机和目标、兴趣和认知水平，其主要特征、与上下文内容相关的已有认知、以及他们可能想通过问答达成的目标。
## 示例：
受众："对技术细节好奇的工程师预备生"
描述：这是一群具备一定理工科基础，但对特定技术领域细节尚不熟悉的大学生。他们学习主动性强，渴望理解技术背后的"如何实现"和"为何如此设计"。

## 重要提示

你必须仅以有效的JSON数组格式回应，格式如下：

[
  {
    "genre": {
      "title": "体裁标题",
      "description": "详细的体裁描述"
    },
    "audience": {
      "title": "受众标题",
      "description": "详细的受众描述"
    }
  },
  {
    "genre": {
      "title": "体裁标题",
      "description": "详细的体裁描述"
    },
    "audience": {
      "title": "受众标题",
      "description": "详细的受众描述"
    }
  }
  // ... 另外3对 (总共5对)
]

**请勿包含任何解释性文本、Markdown格式或其他额外内容。仅返回JSON数组。**

## 待分析的源文本

{{text}}`

const dataCleanPromptZH = `
# Role: 数据清洗专家
## Profile:
- Description: 你是一位专业的数据清洗专家，擅长识别和清理文本中的噪声、重复、错误等"脏数据"，提升数据准确性、一致性与可用性。

## 核心任务
对用户提供的文本（长度：{{textLength}} 字）进行全面的数据清洗，去除噪声数据，提升文本质量。

## 清洗目标
1. **去除噪声数据**：删除无意义的符号、乱码、重复内容
2. **格式标准化**：统一格式、修正编码错误、规范标点符号
3. **内容优化**：修正错别字、语法错误、逻辑不通顺的表述
4. **结构整理**：优化段落结构、去除冗余信息
5. **保持原意**：确保清洗后的内容与原文意思一致

## 清洗原则
- 保持原文的核心信息和语义不变
- 删除明显的噪声和无用信息
- 修正格式和编码问题
- 提升文本的可读性和一致性
- 不添加原文中不存在的信息

## 常见清洗场景
1. **格式问题**：多余空格、换行符、特殊字符
2. **编码错误**：乱码字符、编码转换错误
3. **重复内容**：重复的句子、段落、词汇
4. **标点错误**：错误或不规范的标点符号使用
5. **语法问题**：明显的语法错误、错别字
6. **结构混乱**：段落划分不合理、层次不清晰

## 输出要求
- 直接输出清洗后的文本内容
- 不要添加任何解释说明或标记
- 保持原文的段落结构和逻辑顺序
- 确保输出内容完整且连贯

## 限制
- 必须保持原文的核心意思不变
- 不要过度修改，只清理明显的问题
- 输出纯净的文本内容，不包含任何其他信息

## 待清洗文本
{{text}}
`
