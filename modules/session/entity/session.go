package entity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"interview-planner/core/constants"
)

// Slot is one bookable time interval within a day. A slot is free while its
// Name field is nil; the booking flow writes all four fields together.
type Slot struct {
	Time    string
	Name    any
	Contact any
	City    any
	Note    any
}

// Fields returns the four candidate values in their fixed write order.
func (s Slot) Fields() []any {
	return []any{s.Name, s.Contact, s.City, s.Note}
}

// Free reports whether the slot is unbooked.
func (s Slot) Free() bool {
	return s.Name == nil
}

// Day is one working date within a session, holding its slot grid in
// ascending time order.
type Day struct {
	Key   string
	Date  string
	Slots []Slot
}

// Session is the typed view of the persisted session tree.
type Session struct {
	Title       string
	SessionDate string
	DayNameEng  string
	DayNameSr   string
	Days        []Day
}

// SessionFromDocument decodes the subtree stored under the session root key
// into a typed Session. Day entries come back ordered by their day index,
// slots by time of day.
func SessionFromDocument(value any) (*Session, error) {
	node, ok := asMap(value)
	if !ok {
		return nil, fmt.Errorf("session subtree is not a mapping")
	}

	session := &Session{
		Title:       stringAt(node, "project_name"),
		SessionDate: stringAt(node, "session_date"),
	}

	if names, ok := node["day_name"].([]any); ok {
		if len(names) > 0 {
			session.DayNameEng, _ = names[0].(string)
		}
		if len(names) > 1 {
			session.DayNameSr, _ = names[1].(string)
		}
	}

	daysNode, ok := asMap(node["days"])
	if !ok {
		return session, nil
	}

	dayKeys := make([]string, 0, len(daysNode))
	for key := range daysNode {
		dayKeys = append(dayKeys, key)
	}
	sort.Slice(dayKeys, func(i, j int) bool {
		return dayIndex(dayKeys[i]) < dayIndex(dayKeys[j])
	})

	for _, key := range dayKeys {
		dayNode, ok := asMap(daysNode[key])
		if !ok {
			continue
		}
		day := Day{
			Key:  key,
			Date: stringAt(dayNode, "date"),
		}

		if schedules, ok := asMap(dayNode["schedules"]); ok {
			times := make([]string, 0, len(schedules))
			for t := range schedules {
				times = append(times, t)
			}
			// HH:MM:SS keys sort chronologically as strings.
			sort.Strings(times)

			for _, t := range times {
				slotNode, ok := asMap(schedules[t])
				if !ok {
					continue
				}
				day.Slots = append(day.Slots, Slot{
					Time:    t,
					Name:    slotNode["name"],
					Contact: slotNode["contact"],
					City:    slotNode["city"],
					Note:    slotNode["note"],
				})
			}
		}

		session.Days = append(session.Days, day)
	}

	return session, nil
}

func asMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	default:
		return nil, false
	}
}

func stringAt(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func dayIndex(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(key, constants.DayKeyPrefix))
	if err != nil {
		return 0
	}
	return n
}
