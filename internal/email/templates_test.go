package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManagerRender(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateTaskDelivered, TemplateData{
		"Name":      "Alice",
		"TaskTitle": "Fix <sink>",
		"Message":   "done",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hello Alice")
	assert.Contains(t, html, "Fix &lt;sink&gt;")
	assert.Contains(t, html, "<blockquote>done</blockquote>")

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestTemplateManagerAddTemplate(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("custom", "<p>{{.X}}</p>"))

	html, err := tm.Render("custom", TemplateData{"X": 1})
	require.NoError(t, err)
	assert.Equal(t, "<p>1</p>", html)

	assert.Error(t, tm.AddTemplate("broken", "{{.X"))
}

func TestSMTPProviderValidate(t *testing.T) {
	p := NewSMTPProvider(SMTPConfig{FromEmail: "noreply@example.com"})
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(SMTPConfig{Host: "smtp.example.com", FromEmail: "noreply@example.com"})
	assert.NoError(t, p.Validate())
	assert.Equal(t, 587, p.dialer.Port)
	assert.Equal(t, "WorkHub", p.config.FromName)

	assert.Error(t, p.Send(context.Background(), &Email{Subject: "no recipients"}))
}

func TestMemoryProvider(t *testing.T) {
	p := &MemoryProvider{}
	require.NoError(t, p.Send(context.Background(), &Email{To: []string{"a@example.com"}, Subject: "hi"}))
	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "hi", sent[0].Subject)
}
