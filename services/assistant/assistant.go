// Package assistant proxies the campus AI chat. Role-based redaction of the
// context happens here, in code, before the prompt is assembled; the prompt's
// own RBAC guidelines are advisory text, not the enforcement mechanism.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"assisthub/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// OfflineReply is returned whenever the upstream model cannot be reached.
const OfflineReply = "Connection to the NIAT AI Hub was lost. Please verify your network and try again."

const model = "gemini-3-pro-preview"

type Service struct {
	http   *resty.Client
	db     *gorm.DB
	apiURL string
	apiKey string
}

func New(db *gorm.DB, apiURL, apiKey string) *Service {
	return &Service{
		http:   resty.New().SetTimeout(15 * time.Second),
		db:     db,
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

// Chat answers a prompt for the user. It never returns an error: any failure
// degrades to OfflineReply. Every interaction is written to the log.
func (s *Service) Chat(ctx context.Context, user models.User, prompt string) string {
	reply := s.generate(ctx, user, prompt)
	log.Printf("[AI AUDIT] user=%s role=%s query=%q", user.ID, user.Role, prompt)
	return reply
}

func (s *Service) generate(ctx context.Context, user models.User, prompt string) string {
	if s.apiKey == "" {
		return OfflineReply
	}

	body := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []map[string]string{{"text": s.systemInstruction(user)}},
		},
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{"temperature": 0.7},
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("key", s.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.apiURL, model))
	if err != nil {
		log.Printf("[ASSISTANT] upstream call failed: %v", err)
		return OfflineReply
	}
	if resp.IsError() {
		log.Printf("[ASSISTANT] upstream returned status %d", resp.StatusCode())
		return OfflineReply
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "I apologize, but I encountered an error generating a response."
	}
	return result.Candidates[0].Content.Parts[0].Text
}

// systemInstruction builds the prompt context. What goes in depends on the
// user's role: the user directory and operational stats are attached for
// Admin only, so lower roles cannot coax them out of the model.
func (s *Service) systemInstruction(user models.User) string {
	var b strings.Builder

	b.WriteString("You are the NIAT (NxtWave Institute of Advanced Technologies) AI Assistant for the Chevella Campus.\n\n")
	fmt.Fprintf(&b, "Context for current user:\n- Name: %s\n- Role: %s\n", user.Name, user.Role)
	if user.Program != "" {
		fmt.Fprintf(&b, "- Program: %s\n", user.Program)
	}
	if user.Department != "" {
		fmt.Fprintf(&b, "- Department: %s\n", user.Department)
	}
	if user.GPA > 0 {
		fmt.Fprintf(&b, "- GPA: %.1f\n", user.GPA)
	}
	fmt.Fprintf(&b, "- Attendance: %.0f%%\n\n", user.Attendance)

	b.WriteString("Campus Data:\n")
	var buildings []models.CampusBuilding
	s.db.Order("id").Find(&buildings)
	fmt.Fprintf(&b, "- Buildings & Status: %s\n", mustJSON(buildings))

	var monday []models.TimetableEntry
	s.db.Where("day = ?", "Monday").Order("id").Find(&monday)
	fmt.Fprintf(&b, "- Monday Schedule (Use for availability queries): %s\n", mustJSON(monday))

	var announcements []models.Announcement
	s.db.Order("date DESC").Find(&announcements)
	fmt.Fprintf(&b, "- News & Bulletins: %s\n", mustJSON(announcements))

	// Placements are visible to Students and Admin only, matching the hub views.
	if user.Role != models.RoleFaculty {
		var placements []models.PlacementDrive
		s.db.Order("id").Find(&placements)
		fmt.Fprintf(&b, "- Placement Drives: %s\n", mustJSON(placements))
	}

	// Directory data is admin-only context; it is redacted here rather than
	// left to the model's discretion.
	if user.Role == models.RoleAdmin {
		var users []models.User
		s.db.Where("is_deleted = ?", false).Order("id").Find(&users)
		directory := make([]map[string]interface{}, 0, len(users))
		for _, u := range users {
			directory = append(directory, map[string]interface{}{"id": u.ID, "name": u.Name, "role": u.Role, "email": u.Email})
		}
		fmt.Fprintf(&b, "- User Directory: %s\n", mustJSON(directory))
	}

	b.WriteString(`
Security Guidelines (RBAC):
1. Students are strictly prohibited from accessing administrative data like salaries, private staff info, or system server logs.
2. Faculty cannot access system-level root configurations or administrative audit trails.

Behavioral Instructions:
- Provide specific answers based on the provided Campus Data whenever possible.
- If a room is mentioned in the schedule for Monday, mark it as "OCCUPIED" for today.
- Be concise, helpful, and maintain a professional yet approachable tone.
`)

	return b.String()
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
