package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

const defaultLanguage = "English"

var promptTemplate = template.Must(template.New("compose").Parse(`
You are an expert {{.Channel}} message copywriter.

Write the message in: {{.Language}}
Industry: {{.Industry}}
Tone style: {{.Tone}}
Primary goal: {{.Goal}}

Context details (optional, use only if helpful):
{{.Details}}

Your task:
- Write a highly effective, human-sounding {{.Channel}} message.
- Keep it concise (3-4 lines maximum).
- Make it clear, engaging, and goal-driven.
- Maintain the selected tone throughout.
- Do NOT repeat the metadata (industry, tone, goal, etc.) in the output.
- Provide only the final message, no explanation.
`))

// BuildPrompt renders the copywriter prompt with details as indented JSON
func BuildPrompt(req ComposeRequest) (string, error) {
	details := req.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode compose details: %w", err)
	}

	language := req.Language
	if language == "" {
		language = defaultLanguage
	}

	var buf bytes.Buffer
	err = promptTemplate.Execute(&buf, struct {
		Channel, Language, Industry, Tone, Goal, Details string
	}{
		Channel:  req.Channel,
		Language: language,
		Industry: req.Industry,
		Tone:     req.Tone,
		Goal:     req.Goal,
		Details:  string(detailsJSON),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render compose prompt: %w", err)
	}
	return buf.String(), nil
}
