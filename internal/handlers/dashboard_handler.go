package handlers

import (
	"net/http"
	"strconv"
	"time"

	"familyhub/internal/analytics"
	"familyhub/internal/service"
)

// DashboardHandler serves the derived analytics views
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

type changeView struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

type summaryView struct {
	Members                 int        `json:"members"`
	ChoresCompletedThisWeek int        `json:"choresCompletedThisWeek"`
	ChoreChange             changeView `json:"choreChange"`
	MoodAverage             float64    `json:"moodAverage"`
	MoodEmoji               string     `json:"moodEmoji"`
	EventsThisWeek          int        `json:"eventsThisWeek"`
	EventsToday             int        `json:"eventsToday"`
}

func viewSummary(s analytics.Summary) summaryView {
	return summaryView{
		Members:                 s.Members,
		ChoresCompletedThisWeek: s.ChoresCompletedThisWeek,
		ChoreChange:             changeView{Value: s.ChoreChange.Value, Type: string(s.ChoreChange.Type)},
		MoodAverage:             s.MoodAverage,
		MoodEmoji:               s.MoodEmoji,
		EventsThisWeek:          s.EventsThisWeek,
		EventsToday:             s.EventsToday,
	}
}

type activityView struct {
	Type       string `json:"type"`
	MemberName string `json:"memberName"`
	Action     string `json:"action"`
	Time       string `json:"time"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
}

func viewFeed(feed []analytics.Activity) []activityView {
	views := make([]activityView, len(feed))
	for i, a := range feed {
		views[i] = activityView{
			Type:       a.Type,
			MemberName: a.MemberName,
			Action:     a.Action,
			Time:       a.Time,
			Icon:       a.Icon,
			Color:      a.Color,
		}
	}
	return views
}

type seriesPointView struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

func viewSeries(points []analytics.SeriesPoint) []seriesPointView {
	views := make([]seriesPointView, len(points))
	for i, p := range points {
		views[i] = seriesPointView{Date: p.Date, Value: p.Value}
	}
	return views
}

type todayView struct {
	Moods         []moodView  `json:"moods"`
	PendingChores []choreView `json:"pendingChores"`
	Events        []eventView `json:"events"`
	Meals         []mealView  `json:"meals"`
}

func viewToday(t analytics.TodayOverview) todayView {
	view := todayView{
		Moods:         []moodView{},
		PendingChores: []choreView{},
		Events:        []eventView{},
		Meals:         []mealView{},
	}
	for _, m := range t.Moods {
		view.Moods = append(view.Moods, viewMood(m))
	}
	for _, c := range t.PendingChores {
		view.PendingChores = append(view.PendingChores, viewChore(c))
	}
	for _, e := range t.Events {
		view.Events = append(view.Events, viewEvent(e))
	}
	for _, m := range t.Meals {
		view.Meals = append(view.Meals, viewMeal(m))
	}
	return view
}

type birthdayView struct {
	eventView
	DaysUntil int `json:"daysUntil"`
}

type alertsView struct {
	OverdueChores     []choreView    `json:"overdueChores"`
	UpcomingBirthdays []birthdayView `json:"upcomingBirthdays"`
}

func viewAlerts(a analytics.Alerts, now time.Time) alertsView {
	view := alertsView{OverdueChores: []choreView{}, UpcomingBirthdays: []birthdayView{}}
	for _, c := range a.OverdueChores {
		view.OverdueChores = append(view.OverdueChores, viewChore(c))
	}
	for _, e := range a.UpcomingBirthdays {
		view.UpcomingBirthdays = append(view.UpcomingBirthdays, birthdayView{
			eventView: viewEvent(e),
			DaysUntil: analytics.DaysUntil(e.StartDate, now),
		})
	}
	return view
}

// Overview handles GET /api/v1/dashboard
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	now := time.Now()

	dash, err := h.dashboardService.GetDashboard(member.FamilyID, now)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	upcoming := make([]eventView, len(dash.UpcomingEvents))
	for i, e := range dash.UpcomingEvents {
		upcoming[i] = viewEvent(e)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"summary":        viewSummary(dash.Summary),
		"today":          viewToday(dash.Today),
		"alerts":         viewAlerts(dash.Alerts, now),
		"feed":           viewFeed(dash.Feed),
		"moodTrend":      viewSeries(dash.MoodTrend),
		"choreSeries":    viewSeries(dash.ChoreSeries),
		"upcomingEvents": upcoming,
	})
}

// Feed handles GET /api/v1/dashboard/feed?limit=N
func (h *DashboardHandler) Feed(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "invalid limit", err)
			return
		}
		limit = parsed
	}

	feed, err := h.dashboardService.GetActivityFeed(member.FamilyID, limit, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewFeed(feed))
}

// MemberStats handles GET /api/v1/dashboard/members/{id}/stats
func (h *DashboardHandler) MemberStats(w http.ResponseWriter, r *http.Request) {
	member := GetMemberFromContext(r.Context())
	targetID, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id", err)
		return
	}

	stats, err := h.dashboardService.GetMemberStats(member.FamilyID, targetID, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"choresAssigned":  stats.ChoresAssigned,
		"choresCompleted": stats.ChoresCompleted,
		"recentMood":      stats.RecentMood,
		"upcomingEvents":  stats.UpcomingEvents,
	})
}
