package review

import "strings"

const sectionSeparator = "================================================================================"

// taskHeader is the fixed task description and output-schema contract that
// opens every composed prompt.
const taskHeader = `You are a Pull Request Reviewer AI agent.
You will be given:

- User Context (optional) to understand specific criteria for this review
- A number of coding rules to check against the code changes
- A snapshot of the repository regarding all relevant files
- Code changes to review

Your output must be a JSON object with the following structure:

` + "```json" + `
{
    "approved": boolean,
    "change_requests": [
        {
            "file": "path/to/file.ext",
            "line": 123,
            "comment": "Description of the issue and suggested improvement"
        }
    ],
    "summary": "A brief summary of what the PR changes seem to be trying to achieve, and any concerns or positive feedback you have about the implementation"
}
` + "```"

// PromptInputs are the four components merged into one prompt.
type PromptInputs struct {
	UserContext       string
	CodingRules       string
	FlattenedCodebase string
	DiffChunks        []string
}

// ComposePrompt merges its inputs into one templated document in fixed
// order: task and output-schema contract, user instructions, coding rules,
// repository snapshot, then one fenced block per diff chunk. It performs no
// I/O, no truncation, and no reordering; identical inputs yield a
// byte-identical prompt.
func ComposePrompt(in PromptInputs) string {
	fenced := make([]string, len(in.DiffChunks))
	for i, chunk := range in.DiffChunks {
		fenced[i] = "```\n" + chunk + "\n```"
	}

	var b strings.Builder
	b.WriteString(taskHeader)

	section := func(title, body string) {
		b.WriteString("\n\n")
		b.WriteString(sectionSeparator)
		b.WriteString("\n\n# ")
		b.WriteString(title)
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	section("User context", in.UserContext)
	section("Coding Rules", in.CodingRules)
	section("Repository Snapshot", in.FlattenedCodebase)
	section("Code Changes", strings.Join(fenced, "\n\n"))

	return b.String()
}
