package chat

import (
	"bytes"
	"fmt"
	"text/template"
)

// DefaultPersonaTmpl is sent in the system slot of every generative call.
const DefaultPersonaTmpl = `You are a realtor assistant and you only answer questions about real estate.
Help the client with information or feedback on their query.
Keep your answer short: at most {{.MaxChars}} characters.
If anything is unclear, answer: "I am sorry, I am a real estate bot and would love to help with anything connected to our business."`

// DefaultQueryTmpl wraps the client's prompt as the user turn.
const DefaultQueryTmpl = `Here is the client's query: {{.Query}}`

// DefaultMaxReplyChars caps the reply length asked of the model.
const DefaultMaxReplyChars = 500

// Prompt is a rendered persona and user turn.
type Prompt struct {
	System string
	User   string
}

// PromptRenderer renders the persona and query templates.
type PromptRenderer struct {
	persona  *template.Template
	query    *template.Template
	maxChars int
}

type promptData struct {
	Query    string
	MaxChars int
}

// NewPromptRenderer parses the persona and query templates. Empty texts
// select DefaultPersonaTmpl and DefaultQueryTmpl; a non-positive maxChars
// selects DefaultMaxReplyChars.
func NewPromptRenderer(personaText, queryText string, maxChars int) (*PromptRenderer, error) {
	if personaText == "" {
		personaText = DefaultPersonaTmpl
	}
	if queryText == "" {
		queryText = DefaultQueryTmpl
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxReplyChars
	}

	persona, err := template.New("persona").Option("missingkey=error").Parse(personaText)
	if err != nil {
		return nil, fmt.Errorf("parsing persona template: %w", err)
	}
	query, err := template.New("query").Option("missingkey=error").Parse(queryText)
	if err != nil {
		return nil, fmt.Errorf("parsing query template: %w", err)
	}

	return &PromptRenderer{persona: persona, query: query, maxChars: maxChars}, nil
}

// Render returns the persona and user turn for query.
func (p *PromptRenderer) Render(query string) (Prompt, error) {
	data := promptData{Query: query, MaxChars: p.maxChars}

	var sys, user bytes.Buffer
	if err := p.persona.Execute(&sys, data); err != nil {
		return Prompt{}, fmt.Errorf("executing persona template: %w", err)
	}
	if err := p.query.Execute(&user, data); err != nil {
		return Prompt{}, fmt.Errorf("executing query template: %w", err)
	}
	return Prompt{System: sys.String(), User: user.String()}, nil
}

// MaxTokens is the completion budget for the reply cap. At roughly three
// characters per token it leaves headroom over the requested length.
func (p *PromptRenderer) MaxTokens() int {
	return (p.maxChars + 2) / 3
}
