package domain

// DashboardStats is derived on demand, never persisted.
type DashboardStats struct {
	TotalUsers                int64
	TotalHackathonTeams       int64
	TotalWorkshopParticipants int64
}
