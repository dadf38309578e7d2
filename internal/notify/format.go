package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"gestman-backend/internal/database/models"
)

// Message carries everything the formatter may print
type Message struct {
	Category       models.AlertCategory
	Title          string
	Description    string
	LocationNumber string
	AssetID        string
	AssetType      string
	Operator       string
	Notes          string
	Operation      string
	DaysRemaining  *int
	Classification string
}

// Target returns the filter view of the message
func (m Message) Target() Target {
	return Target{
		Category:       m.Category,
		LocationNumber: m.LocationNumber,
		AssetID:        m.AssetID,
		AssetType:      m.AssetType,
		Title:          m.Title,
		Description:    m.Description,
	}
}

const timestampLayout = "02/01/2006 15:04"

// Format renders the message as Bot API HTML, one layout per category
func Format(m Message, at time.Time) string {
	var b strings.Builder
	line := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<b>%s:</b> %s\n", label, html.EscapeString(value))
	}

	switch m.Category {
	case models.AlertCategoryScheduleDue:
		b.WriteString("⏰ <b>GESTMAN Alert</b>\n\n")
		b.WriteString("<b>Type:</b> Schedule due\n")
		line("Location", m.LocationNumber)
		line("Asset", m.AssetID)
		line("Operation", m.Operation)
		line("Info", m.Notes)
		if m.DaysRemaining != nil {
			line("Days remaining", fmt.Sprintf("%d", *m.DaysRemaining))
		}
	case models.AlertCategoryTicket:
		b.WriteString("🎫 <b>New GESTMAN Ticket</b>\n\n")
		line("Requested by", m.Operator)
		line("Location", m.LocationNumber)
		line("Asset", m.AssetID)
		line("Description", m.Description)
		if m.Notes != m.Description {
			line("Notes", m.Notes)
		}
	default:
		b.WriteString("🚨 <b>GESTMAN Alert</b>\n\n")
		line("Type", categoryLabel(m.Category))
		line("Operator", m.Operator)
		line("Location", m.LocationNumber)
		line("Asset", m.AssetID)
		line("Description", m.Description)
		line("Notes", m.Notes)
	}

	fmt.Fprintf(&b, "\n📅 %s", at.Format(timestampLayout))
	if m.Category == models.AlertCategoryTicket {
		b.WriteString("\n\n💡 <i>New ticket to handle in the Alerts section</i>")
	}
	return b.String()
}

func categoryLabel(c models.AlertCategory) string {
	switch c {
	case models.AlertCategoryNonConformity:
		return "Non-conformity"
	case models.AlertCategoryTicket:
		return "Ticket"
	case models.AlertCategoryScheduleDue:
		return "Schedule due"
	}
	s := strings.ReplaceAll(string(c), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
