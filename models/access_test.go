package models

import "testing"

func TestEvaluateAccess(t *testing.T) {
	owner := User{ID: 1}
	stranger := User{ID: 2}
	admin := User{ID: 3, Abilities: []Ability{{Name: AbilityAlbumAdmin}}}
	anonymous := User{}

	public := Album{ID: 10, UserID: owner.ID}
	private := Album{ID: 11, UserID: owner.ID, Private: true}

	tests := []struct {
		name  string
		album *Album
		user  *User
		want  Access
	}{
		{"public album, anonymous", &public, &anonymous, Access{CanAccess: true}},
		{"public album, stranger", &public, &stranger, Access{CanAccess: true}},
		{"public album, owner", &public, &owner, Access{CanAccess: true, CanModify: true}},
		{"public album, admin", &public, &admin, Access{CanAccess: true, CanModify: true}},
		{"private album, anonymous", &private, &anonymous, Access{}},
		{"private album, stranger", &private, &stranger, Access{}},
		{"private album, owner", &private, &owner, Access{CanAccess: true, CanModify: true}},
		{"private album, admin", &private, &admin, Access{CanAccess: true, CanModify: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateAccess(tt.album, tt.user)
			if got != tt.want {
				t.Errorf("EvaluateAccess() = %+v, want %+v", got, tt.want)
			}
			if got.CanModify && !got.CanAccess {
				t.Errorf("CanModify without CanAccess")
			}
		})
	}
}
