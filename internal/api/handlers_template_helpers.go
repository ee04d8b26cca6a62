package api

import (
	"html/template"
	"strings"
	"time"

	"github.com/mtareb/medichat/internal/models"
)

var pageTemplates = []string{
	"signin",
	"signup",
	"profile",
	"chat",
	"not_found",
}

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatClock":   formatTemplateClock,
		"isActiveRoute": isActiveTemplateRoute,
		"senderClass":   templateSenderClass,
	}
}

func formatTemplateClock(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("15:04")
}

func isActiveTemplateRoute(currentPath string, targetPath string) bool {
	return currentPath == targetPath || strings.HasPrefix(currentPath, targetPath+"/")
}

func templateSenderClass(sender models.ChatSender) string {
	if sender == models.SenderUser {
		return "message-user"
	}
	return "message-bot"
}
