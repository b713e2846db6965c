package handlers

import (
	"strings"
	"time"

	"github.com/fashioncollab/fashioncollab/internal/models"
)

// Field rules mirror the project schema: title 3-100 chars after trimming,
// description up to 1000, location up to 200, shoot date strictly in the
// future when supplied, status one of the known values. All violations are
// collected so the caller sees every problem at once.

func validateCreateProject(body *CreateProjectRequest) []string {
	var details []string

	title := strings.TrimSpace(body.Title)

	switch {
	case title == "":
		details = append(details, "Title is required")
	case len(title) < 3:
		details = append(details, "Title must be at least 3 characters long")
	case len(title) > 100:
		details = append(details, "Title cannot be longer than 100 characters")
	}

	details = append(details, validateOptionalFields(body.Description, body.Location, body.ShootDate)...)

	if body.Status != "" && !models.ValidStatus(models.ProjectStatus(body.Status)) {
		details = append(details, "Invalid status. Allowed: draft, planned, in_progress, completed, cancelled")
	}

	return details
}

// validateUpdateProject returns the column/value pairs to apply alongside
// any violations. At least one field must be present.
func validateUpdateProject(body *UpdateProjectRequest) (map[string]interface{}, []string) {
	var details []string

	fields := make(map[string]interface{})

	if body.Title != nil {
		title := strings.TrimSpace(*body.Title)

		switch {
		case len(title) < 3:
			details = append(details, "Title must be at least 3 characters long")
		case len(title) > 100:
			details = append(details, "Title cannot be longer than 100 characters")
		default:
			fields["title"] = title
		}
	}

	if body.Description != nil {
		description := strings.TrimSpace(*body.Description)

		if len(description) > 1000 {
			details = append(details, "Description cannot be longer than 1000 characters")
		} else {
			fields["description"] = description
		}
	}

	if body.Location != nil {
		location := strings.TrimSpace(*body.Location)

		if len(location) > 200 {
			details = append(details, "Location cannot be longer than 200 characters")
		} else {
			fields["location"] = location
		}
	}

	if body.ShootDate != nil {
		if !body.ShootDate.After(time.Now()) {
			details = append(details, "Shoot date must be in the future")
		} else {
			fields["shoot_date"] = *body.ShootDate
		}
	}

	if body.Status != nil {
		if !models.ValidStatus(models.ProjectStatus(*body.Status)) {
			details = append(details, "Invalid status. Allowed: draft, planned, in_progress, completed, cancelled")
		} else {
			fields["status"] = *body.Status
		}
	}

	if len(details) == 0 && len(fields) == 0 {
		details = append(details, "At least one field (title, description, location, shoot_date, status) must be provided for update")
	}

	return fields, details
}

func validateOptionalFields(description, location string, shootDate *time.Time) []string {
	var details []string

	if len(strings.TrimSpace(description)) > 1000 {
		details = append(details, "Description cannot be longer than 1000 characters")
	}

	if len(strings.TrimSpace(location)) > 200 {
		details = append(details, "Location cannot be longer than 200 characters")
	}

	if shootDate != nil && !shootDate.After(time.Now()) {
		details = append(details, "Shoot date must be in the future")
	}

	return details
}
