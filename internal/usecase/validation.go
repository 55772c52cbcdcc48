package usecase

import (
	"net/mail"
	"strings"

	"leaddesk/internal/entity"
)

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"firstName", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, ValidationError{"lastName", "is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if strings.TrimSpace(input.CampaignID) == "" {
		errs = append(errs, ValidationError{"campaignId", "is required"})
	}
	if input.Status != "" && !entity.LeadStatus(input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid lead status"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if input.FirstName != nil && strings.TrimSpace(*input.FirstName) == "" {
		errs = append(errs, ValidationError{"firstName", "must not be empty"})
	}
	if input.LastName != nil && strings.TrimSpace(*input.LastName) == "" {
		errs = append(errs, ValidationError{"lastName", "must not be empty"})
	}
	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}
	if input.Status != nil && !entity.LeadStatus(*input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid lead status"})
	}
	if input.CampaignID != nil && strings.TrimSpace(*input.CampaignID) == "" {
		errs = append(errs, ValidationError{"campaignId", "must not be empty"})
	}

	return errs
}

func ValidateCreateCampaignInput(input CreateCampaignInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errs = append(errs, ValidationError{"name", "must not exceed 200 characters"})
	}
	if input.Status != "" && !entity.CampaignStatus(input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid campaign status"})
	}

	return errs
}

func ValidateUpdateCampaignInput(input UpdateCampaignInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			errs = append(errs, ValidationError{"name", "must not be empty"})
		} else if len(*input.Name) > 200 {
			errs = append(errs, ValidationError{"name", "must not exceed 200 characters"})
		}
	}
	if input.Status != nil && !entity.CampaignStatus(*input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid campaign status"})
	}

	return errs
}

func ValidateRecordInteractionInput(input RecordInteractionInput) []ValidationError {
	var errs []ValidationError

	if input.Type == "" {
		errs = append(errs, ValidationError{"type", "is required"})
	} else if !entity.InteractionType(input.Type).Valid() {
		errs = append(errs, ValidationError{"type", "is not a valid interaction type"})
	}
	if input.Status != "" && !entity.InteractionStatus(input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a valid interaction status"})
	}

	return errs
}
