package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDisplayName(t *testing.T) {
	username := "alice"
	empty := ""

	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "username when set",
			user: User{TelegramId: 42, Username: &username},
			want: "alice",
		},
		{
			name: "numeric id when username missing",
			user: User{TelegramId: 42},
			want: "42",
		},
		{
			name: "numeric id when username empty",
			user: User{TelegramId: 42, Username: &empty},
			want: "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}
