package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"strings"

	"github.com/CU-CodingClub/Main/internal/techfest/domain"
	"github.com/CU-CodingClub/Main/internal/techfest/store"
)

// CSV export timestamp layout.
const exportTimeLayout = "2006-01-02 15:04:05"

// Admin serves the dashboard: stats, registration listings and CSV
// exports.
type Admin struct {
	store  store.Store
	logger *slog.Logger
}

func NewAdmin(st store.Store, logger *slog.Logger) *Admin {
	return &Admin{store: st, logger: logger}
}

func (s *Admin) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return s.store.Stats(ctx)
}

func (s *Admin) ListHackathon(ctx context.Context) ([]domain.HackathonTeam, error) {
	return s.store.Hackathon().ListWithMembers(ctx)
}

func (s *Admin) ListWorkshop(ctx context.Context) ([]domain.WorkshopRegistration, error) {
	return s.store.Workshop().List(ctx)
}

// ExportHackathonCSV renders every team as one CSV row. Member names,
// emails and phones are collapsed into semicolon-separated columns so
// the row count matches the team count.
func (s *Admin) ExportHackathonCSV(ctx context.Context) ([]byte, error) {
	teams, err := s.store.Hackathon().ListWithMembers(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Team Name", "Leader Name", "Leader Email", "Leader Phone",
		"Leader College", "Leader Year",
		"Member Names", "Member Emails", "Member Phones",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, team := range teams {
		names := make([]string, 0, len(team.Members))
		emails := make([]string, 0, len(team.Members))
		phones := make([]string, 0, len(team.Members))
		for _, m := range team.Members {
			names = append(names, m.Name)
			emails = append(emails, m.Email)
			phones = append(phones, m.Phone)
		}

		row := []string{
			team.TeamName,
			team.LeaderName,
			team.LeaderEmail,
			team.LeaderPhone,
			team.LeaderCollege,
			team.LeaderYear,
			strings.Join(names, "; "),
			strings.Join(emails, "; "),
			strings.Join(phones, "; "),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportWorkshopCSV renders every workshop registration as one CSV row.
func (s *Admin) ExportWorkshopCSV(ctx context.Context) ([]byte, error) {
	regs, err := s.store.Workshop().List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Email", "Phone", "College", "Registered At"}); err != nil {
		return nil, err
	}

	for _, reg := range regs {
		row := []string{
			reg.Name,
			reg.Email,
			reg.Phone,
			reg.College,
			reg.CreatedAt.Format(exportTimeLayout),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
