package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/analysis"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/bootstrap"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/calendar"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/readiness"
	httputil "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/infrastructure/http"
	infrapubsub "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/infrastructure/pubsub"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// Server holds the API's dependencies.
type Server struct {
	svc      *bootstrap.Service
	analyzer *analysis.Analyzer
}

func NewServer(svc *bootstrap.Service) *Server {
	return &Server{
		svc:      svc,
		analyzer: analysis.New(svc.DB),
	}
}

// Router builds the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/athletes/{athleteID}", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Post("/checkins", s.handleCheckinUpsert)
	})
	r.Get("/coaches/{coachID}/triage", s.handleTriage)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	athleteID := chi.URLParam(r, "athleteID")

	dashboard, err := s.analyzer.Dashboard(r.Context(), athleteID)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, dashboard)
}

func (s *Server) handleTriage(w http.ResponseWriter, r *http.Request) {
	coachID := chi.URLParam(r, "coachID")

	result, err := s.analyzer.Roster(r.Context(), coachID)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (s *Server) handleCheckinUpsert(w http.ResponseWriter, r *http.Request) {
	athleteID := chi.URLParam(r, "athleteID")

	var checkin types.CheckinRecord
	if err := httputil.DecodeJSON(r, &checkin); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	checkin.AthleteID = athleteID
	if checkin.Date == "" {
		checkin.Date = calendar.DayOf(s.analyzer.Clock(), s.analyzer.Loc)
	}
	if err := checkin.Validate(); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	score := s.analyzer.Scorer.Score(readiness.Input{
		SleepHours:   checkin.SleepHours,
		SleepQuality: checkin.SleepQuality,
		StressLevel:  checkin.StressLevel,
		HasPain:      checkin.HasPain,
		Soreness:     checkin.Soreness,
	})
	checkin.Readiness = &score
	if checkin.SubmittedAt.IsZero() {
		checkin.SubmittedAt = time.Now().UTC()
	}

	if err := s.svc.DB.UpsertCheckin(r.Context(), &checkin); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.publishRecorded(r.Context(), &checkin, score)

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"athlete_id": checkin.AthleteID,
		"date":       checkin.Date,
		"readiness":  score,
		"band":       readiness.BandFor(score),
	})
}

// publishRecorded notifies downstream consumers; publish failures are
// logged, the check-in is already durable.
func (s *Server) publishRecorded(ctx context.Context, checkin *types.CheckinRecord, score int) {
	e, err := infrapubsub.NewCloudEvent(
		infrapubsub.SourceAPICoach,
		infrapubsub.EventTypeCheckinRecorded,
		map[string]interface{}{
			"athlete_id": checkin.AthleteID,
			"date":       checkin.Date,
			"readiness":  score,
		},
	)
	if err == nil {
		_, err = s.svc.Pub.PublishCloudEvent(ctx, shared.TopicCheckinRecorded, e)
	}
	if err != nil {
		bootstrap.NewLogger("api-coach").Warn("Failed to publish checkin event", "error", err)
	}
}
