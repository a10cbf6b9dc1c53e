package auth

import "github.com/propdesk/propdesk/internal/models"

// MergeUserInfo combines two partial identity records field by field:
// primary values win, secondary values fill gaps. Both inputs may be nil.
// The backend's login payload and its token claims are not guaranteed to
// agree, so the caller picks which side is authoritative.
func MergeUserInfo(primary, secondary *models.UserInfo) *models.UserInfo {
	if primary == nil && secondary == nil {
		return nil
	}
	merged := &models.UserInfo{}
	if primary != nil {
		*merged = *primary
	}
	if secondary == nil {
		return merged
	}
	if merged.UserID == "" {
		merged.UserID = secondary.UserID
	}
	if merged.FirstName == "" {
		merged.FirstName = secondary.FirstName
	}
	if merged.LastName == "" {
		merged.LastName = secondary.LastName
	}
	if merged.Email == "" {
		merged.Email = secondary.Email
	}
	if merged.UserName == "" {
		merged.UserName = secondary.UserName
	}
	if merged.Role == "" {
		merged.Role = secondary.Role
	}
	return merged
}
