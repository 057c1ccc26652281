package model

import (
	"time"

	"proconnect/internal/domain"
)

func (u User) ToDomain() domain.User {
	out := domain.User{
		ID:                u.ID,
		Name:              u.Name,
		Headline:          u.Headline,
		Company:           u.Company,
		Location:          u.Location,
		Avatar:            u.Avatar,
		Bio:               u.Bio,
		Skills:            append([]string(nil), u.Skills...),
		Connections:       u.Connections,
		IsConnected:       u.IsConnected,
		MutualConnections: u.MutualConnections,
	}
	for _, e := range u.Experience {
		out.Experience = append(out.Experience, domain.Experience{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
			Current:     e.Current,
		})
	}
	for _, e := range u.Education {
		out.Education = append(out.Education, domain.Education{
			ID:          e.ID,
			School:      e.School,
			Degree:      e.Degree,
			Field:       e.Field,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}
	return out
}

func (c Company) ToDomain() domain.Company {
	return domain.Company{
		ID:          c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		Size:        c.Size,
		Location:    c.Location,
		Description: c.Description,
		EmployeeIDs: append([]string(nil), c.EmployeeIDs...),
	}
}

func (p Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Content:   p.Content,
		Timestamp: p.Timestamp,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Shares:    p.Shares,
		Type:      domain.PostType(p.Type),
	}
}

func (j Job) ToDomain() domain.Job {
	return domain.Job{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		PostedTime:   j.PostedTime,
		Description:  j.Description,
		Requirements: append([]string(nil), j.Requirements...),
		Bookmarked:   j.IsBookmarked,
		Applicants:   j.Applicants,
	}
}

func (m Message) ToDomain() domain.Message {
	return domain.Message{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		Timestamp:   m.Timestamp,
		Read:        m.Read,
	}
}

func (c Conversation) ToDomain() domain.Conversation {
	return domain.Conversation{
		ID:            c.ID,
		ParticipantID: c.ParticipantID,
		LastMessageID: c.LastMessageID,
		UnreadCount:   c.UnreadCount,
	}
}

func (p Pod) ToDomain() domain.Pod {
	return domain.Pod{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Members:      p.Members,
		Location:     domain.GeoPoint{Lat: p.Location.Lat, Lng: p.Location.Lng, Name: p.Location.Name},
		Category:     p.Category,
		IsActive:     p.IsActive,
		LastActivity: p.LastActivity,
		Avatar:       p.Avatar,
	}
}

// ToDomain assumes the date was accepted by Snapshot.Check.
func (e Event) ToDomain() domain.CalendarEvent {
	d, _ := time.Parse(DateLayout, e.Date)
	return domain.CalendarEvent{
		ID:       e.ID,
		Title:    e.Title,
		Date:     d,
		Time:     e.Time,
		Type:     domain.EventType(e.Type),
		Company:  e.Company,
		Location: e.Location,
		IsPublic: e.IsPublic,
	}
}
