package auth

import (
	"testing"

	"github.com/propdesk/propdesk/internal/models"
)

func TestMergeUserInfo(t *testing.T) {
	tests := []struct {
		name      string
		primary   *models.UserInfo
		secondary *models.UserInfo
		want      *models.UserInfo
	}{
		{
			name: "both nil",
		},
		{
			name:    "secondary nil",
			primary: &models.UserInfo{Email: "a@b.c"},
			want:    &models.UserInfo{Email: "a@b.c"},
		},
		{
			name:      "primary nil",
			secondary: &models.UserInfo{Email: "a@b.c"},
			want:      &models.UserInfo{Email: "a@b.c"},
		},
		{
			name:      "primary wins on conflict",
			primary:   &models.UserInfo{FirstName: "Ana", Email: "ana@b.c"},
			secondary: &models.UserInfo{FirstName: "Other", Email: "other@b.c", Role: "Admin"},
			want:      &models.UserInfo{FirstName: "Ana", Email: "ana@b.c", Role: "Admin"},
		},
		{
			name:      "secondary fills every gap",
			primary:   &models.UserInfo{UserID: "u-1"},
			secondary: &models.UserInfo{FirstName: "Ana", LastName: "Ruiz", Email: "a@b.c", UserName: "ana", Role: "User"},
			want:      &models.UserInfo{UserID: "u-1", FirstName: "Ana", LastName: "Ruiz", Email: "a@b.c", UserName: "ana", Role: "User"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeUserInfo(tt.primary, tt.secondary)
			if tt.want == nil {
				if got != nil {
					t.Errorf("MergeUserInfo() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *tt.want {
				t.Errorf("MergeUserInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeUserInfoDoesNotMutateInputs(t *testing.T) {
	primary := &models.UserInfo{UserID: "u-1"}
	secondary := &models.UserInfo{Email: "a@b.c"}

	_ = MergeUserInfo(primary, secondary)

	if *primary != (models.UserInfo{UserID: "u-1"}) {
		t.Errorf("primary mutated: %+v", primary)
	}
	if *secondary != (models.UserInfo{Email: "a@b.c"}) {
		t.Errorf("secondary mutated: %+v", secondary)
	}
}
