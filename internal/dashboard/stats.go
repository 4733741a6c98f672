package dashboard

import (
	"sort"
	"strconv"

	"github.com/spec-kit/verve-admin/internal/domain"
)

// ReclamationStats summarizes the réclamation list for the overview page.
type ReclamationStats struct {
	Total              int
	StatusCounts       map[string]int
	SatisfactionLevels map[string]int
	ProblemTypes       map[string]int
	PerDay             map[string]int
	TopSyndics         []SyndicActivity
}

// SyndicActivity counts réclamations handled per syndic.
type SyndicActivity struct {
	Name  string
	Count int
}

// ComputeReclamationStats derives the overview numbers from the current
// réclamation views. Satisfaction buckets are keyed "0", "50", "100" and
// "null" for réclamations without a reported level; days are keyed
// YYYY-MM-DD.
func ComputeReclamationStats(items []ReclamationView) ReclamationStats {
	stats := ReclamationStats{
		Total:              len(items),
		StatusCounts:       make(map[string]int),
		SatisfactionLevels: map[string]int{"0": 0, "50": 0, "100": 0, "null": 0},
		ProblemTypes:       make(map[string]int),
		PerDay:             make(map[string]int),
	}

	bySyndic := make(map[string]int)
	for _, rec := range items {
		if rec.Status != "" {
			stats.StatusCounts[string(rec.Status)]++
		}
		if rec.SatisfactionLevel == nil {
			stats.SatisfactionLevels["null"]++
		} else {
			stats.SatisfactionLevels[strconv.Itoa(*rec.SatisfactionLevel)]++
		}
		if rec.Problem != "" {
			stats.ProblemTypes[rec.Problem]++
		}
		if rec.Date != nil {
			stats.PerDay[rec.Date.UTC().Format("2006-01-02")]++
		}
		if rec.SyndicID != nil && rec.SyndicName != "" {
			bySyndic[rec.SyndicName]++
		}
	}

	stats.TopSyndics = topSyndics(bySyndic, 5)
	return stats
}

func topSyndics(bySyndic map[string]int, limit int) []SyndicActivity {
	ranked := make([]SyndicActivity, 0, len(bySyndic))
	for name, count := range bySyndic {
		ranked = append(ranked, SyndicActivity{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// UserStats summarizes the user list.
type UserStats struct {
	Total     int
	Residents int
	Syndics   int
}

// ComputeUserStats counts accounts per type.
func ComputeUserStats(users []domain.AppUser) UserStats {
	stats := UserStats{Total: len(users)}
	for _, u := range users {
		switch u.UserType {
		case domain.UserTypeResident:
			stats.Residents++
		case domain.UserTypeSyndic:
			stats.Syndics++
		}
	}
	return stats
}

// NotificationStats summarizes the notification list. PerUserType buckets by
// the joined recipient's user type; notifications whose recipient no longer
// exists land under "unknown".
type NotificationStats struct {
	Total       int
	Unread      int
	PerUserType map[string]int
}

// ComputeNotificationStats counts delivered and still-unread notifications.
func ComputeNotificationStats(notifications []domain.AppNotification) NotificationStats {
	stats := NotificationStats{
		Total:       len(notifications),
		PerUserType: make(map[string]int),
	}
	for _, n := range notifications {
		if !n.IsRead {
			stats.Unread++
		}
		if n.Recipient != nil && n.Recipient.UserType != "" {
			stats.PerUserType[string(n.Recipient.UserType)]++
		} else {
			stats.PerUserType["unknown"]++
		}
	}
	return stats
}
