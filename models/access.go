package models

// Access is the per-request policy result for one album and one requester.
// Both flags default to false; callers never see an unset state.
type Access struct {
	CanAccess bool
	CanModify bool
}

// EvaluateAccess applies the visibility/ownership rules in order:
// public albums are readable by anyone (including anonymous requesters),
// and the creator or an album-admin can both read and modify.
func EvaluateAccess(album *Album, user *User) (a Access) {
	if !album.Private {
		a.CanAccess = true
	}
	if user.ID != 0 && (user.ID == album.UserID || user.HasAbility(AbilityAlbumAdmin)) {
		a.CanAccess = true
		a.CanModify = true
	}
	return
}
