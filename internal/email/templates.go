package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const (
	TemplateApplicationAccepted = "application_accepted"
	TemplateApplicationRejected = "application_rejected"
	TemplateTaskDelivered       = "task_delivered"
	TemplateTaskPaid            = "task_paid"
	TemplateTaskCancelled       = "task_cancelled"
	TemplateExtensionRequested  = "extension_requested"
	TemplateExtensionAnswered   = "extension_answered"
)

var builtinTemplates = map[string]string{
	TemplateApplicationAccepted: `<p>Hello {{.Name}},</p><p>Your application for <b>{{.TaskTitle}}</b> was accepted. You can start working on the task.</p>`,
	TemplateApplicationRejected: `<p>Hello {{.Name}},</p><p>Your application for <b>{{.TaskTitle}}</b> was not selected.</p>`,
	TemplateTaskDelivered:       `<p>Hello {{.Name}},</p><p>The worker delivered <b>{{.TaskTitle}}</b>.</p>{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}<p>Please review the work and mark it as received.</p>`,
	TemplateTaskPaid:            `<p>Hello {{.Name}},</p><p>Payment for <b>{{.TaskTitle}}</b> was confirmed. The task is completed.</p>`,
	TemplateTaskCancelled:       `<p>Hello {{.Name}},</p><p>The task <b>{{.TaskTitle}}</b> was cancelled.</p>`,
	TemplateExtensionRequested:  `<p>Hello {{.Name}},</p><p>The worker asked for more time on <b>{{.TaskTitle}}</b>:</p><blockquote>{{.Message}}</blockquote>`,
	TemplateExtensionAnswered:   `<p>Hello {{.Name}},</p><p>Your extension request for <b>{{.TaskTitle}}</b> was {{.Decision}}.</p>{{if .Message}}<blockquote>{{.Message}}</blockquote>{{end}}`,
}

// TemplateManager хранит разобранные html-шаблоны писем
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер со встроенными шаблонами уведомлений
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template, len(builtinTemplates))}
	for name, body := range builtinTemplates {
		tm.templates[name] = template.Must(template.New(name).Parse(body))
	}
	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate добавляет или заменяет шаблон
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
