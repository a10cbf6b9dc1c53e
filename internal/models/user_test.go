package models

import "testing"

func TestUserInfoComplete(t *testing.T) {
	full := UserInfo{
		UserID:    "u-1",
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@example.com",
		UserName:  "ana@example.com",
		Role:      "Admin",
	}

	tests := []struct {
		name   string
		mutate func(*UserInfo)
		want   bool
	}{
		{"all fields set", func(u *UserInfo) {}, true},
		{"missing role is still complete", func(u *UserInfo) { u.Role = "" }, true},
		{"missing user id", func(u *UserInfo) { u.UserID = "" }, false},
		{"missing first name", func(u *UserInfo) { u.FirstName = "" }, false},
		{"missing last name", func(u *UserInfo) { u.LastName = "" }, false},
		{"missing email", func(u *UserInfo) { u.Email = "" }, false},
		{"missing user name", func(u *UserInfo) { u.UserName = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := full
			tt.mutate(&info)
			if got := info.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("nil receiver", func(t *testing.T) {
		var info *UserInfo
		if info.Complete() {
			t.Error("nil user info reported complete")
		}
	})
}
