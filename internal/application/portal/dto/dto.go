// Package dto contains read-only view objects for the public portal.
package dto

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"coachdesk/internal/domain/schedule"
	"coachdesk/internal/domain/student"
	"coachdesk/internal/domain/workout"
)

var (
	markdown   = goldmark.New()
	htmlPolicy = bluemonday.UGCPolicy()
)

// RenderNotes converts trainer-authored markdown notes to sanitized HTML for
// the portal. Falls back to the sanitized raw text if rendering fails.
func RenderNotes(notes string) string {
	if notes == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(notes), &buf); err != nil {
		return htmlPolicy.Sanitize(notes)
	}
	return htmlPolicy.Sanitize(buf.String())
}

type PortalWorkoutItem struct {
	ExerciseID   uint    `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name,omitempty"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	LoadKg       float64 `json:"load_kg"`
	RestSeconds  int     `json:"rest_seconds"`
	Notes        string  `json:"notes,omitempty"`
}

type PortalWorkout struct {
	ID        uint                `json:"id"`
	Name      string              `json:"name"`
	NotesHTML string              `json:"notes_html,omitempty"`
	Items     []PortalWorkoutItem `json:"items"`
}

type PortalAppointment struct {
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
}

// StudentPortalView is everything a student sees on their portal page.
type StudentPortalView struct {
	StudentID    uint                `json:"student_id"`
	Name         string              `json:"name"`
	Workouts     []PortalWorkout     `json:"workouts"`
	Appointments []PortalAppointment `json:"appointments"`
}

// WorkoutPortalView is the public share page for a single workout.
type WorkoutPortalView struct {
	WorkoutID uint                `json:"workout_id"`
	Name      string              `json:"name"`
	NotesHTML string              `json:"notes_html,omitempty"`
	Items     []PortalWorkoutItem `json:"items"`
}

// ExerciseNameLookup supplies display names for referenced exercises. Missing
// ids render without a name.
type ExerciseNameLookup map[uint]string

func ToPortalWorkout(w *workout.Workout, names ExerciseNameLookup) PortalWorkout {
	return PortalWorkout{
		ID:        w.ID(),
		Name:      w.Name(),
		NotesHTML: RenderNotes(w.Notes()),
		Items:     toPortalItems(w.Items(), names),
	}
}

func ToWorkoutPortalView(w *workout.Workout, names ExerciseNameLookup) *WorkoutPortalView {
	return &WorkoutPortalView{
		WorkoutID: w.ID(),
		Name:      w.Name(),
		NotesHTML: RenderNotes(w.Notes()),
		Items:     toPortalItems(w.Items(), names),
	}
}

func ToStudentPortalView(s *student.Student, workouts []*workout.Workout,
	appointments []*schedule.Appointment, names ExerciseNameLookup) *StudentPortalView {

	view := &StudentPortalView{
		StudentID:    s.ID(),
		Name:         s.Name(),
		Workouts:     make([]PortalWorkout, 0, len(workouts)),
		Appointments: make([]PortalAppointment, 0, len(appointments)),
	}
	for _, w := range workouts {
		view.Workouts = append(view.Workouts, ToPortalWorkout(w, names))
	}
	for _, a := range appointments {
		view.Appointments = append(view.Appointments, PortalAppointment{
			ScheduledAt:     a.ScheduledAt().Format("2006-01-02T15:04:05Z07:00"),
			DurationMinutes: a.DurationMinutes(),
			Status:          string(a.Status()),
		})
	}
	return view
}

func toPortalItems(items []workout.Item, names ExerciseNameLookup) []PortalWorkoutItem {
	out := make([]PortalWorkoutItem, 0, len(items))
	for _, item := range items {
		out = append(out, PortalWorkoutItem{
			ExerciseID:   item.ExerciseID,
			ExerciseName: names[item.ExerciseID],
			Sets:         item.Sets,
			Reps:         item.Reps,
			LoadKg:       item.LoadKg,
			RestSeconds:  item.RestSeconds,
			Notes:        item.Notes,
		})
	}
	return out
}
