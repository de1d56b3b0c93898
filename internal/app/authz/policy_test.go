package authz

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
)

var (
	collegeA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	collegeB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func actorWith(role models.Role, college uuid.UUID) Actor {
	return Actor{ID: uuid.New(), Role: role, CollegeID: college}
}

func TestPolicyTable(t *testing.T) {
	admin := actorWith(models.RoleAdmin, collegeA)
	officials := actorWith(models.RoleOfficials, collegeA)
	alumni := actorWith(models.RoleAlumni, collegeA)
	student := actorWith(models.RoleStudent, collegeA)

	cases := []struct {
		name    string
		actor   Actor
		res     Resource
		act     Action
		target  Target
		allowed bool
	}{
		// College: admin only, for every action.
		{"admin creates college", admin, ResourceCollege, ActionCreate, Target{}, true},
		{"officials create college denied", officials, ResourceCollege, ActionCreate, Target{}, false},
		{"student reads college denied", student, ResourceCollege, ActionRead, Target{}, false},
		{"alumni list colleges denied", alumni, ResourceCollege, ActionReadAll, Target{}, false},
		{"admin deletes college", admin, ResourceCollege, ActionDelete, Target{}, true},

		// User: self-read for everyone, admin for the rest.
		{"student reads own profile", student, ResourceUser, ActionRead, Owner(student.ID), true},
		{"student reads other profile denied", student, ResourceUser, ActionRead, Owner(admin.ID), false},
		{"admin lists users", admin, ResourceUser, ActionList, Target{}, true},
		{"officials list users denied", officials, ResourceUser, ActionList, Target{}, false},
		{"admin deletes user", admin, ResourceUser, ActionDelete, Target{}, true},
		{"alumni update user denied", alumni, ResourceUser, ActionUpdate, Target{}, false},

		// Post: publisher roles create/update/delete; student never.
		{"admin creates post", admin, ResourcePost, ActionCreate, Target{}, true},
		{"officials create post", officials, ResourcePost, ActionCreate, Target{}, true},
		{"alumni create post", alumni, ResourcePost, ActionCreate, Target{}, true},
		{"student creates post denied", student, ResourcePost, ActionCreate, Target{}, false},
		{"student updates post denied", student, ResourcePost, ActionUpdate, Target{}, false},
		{"alumni delete post role gate passes", alumni, ResourcePost, ActionDelete, Target{}, true},

		// Post feeds: college feed is scoped with an admin bypass; public
		// feed is open to any authenticated actor.
		{"student reads own college feed", student, ResourcePost, ActionReadCollege, CollegeOf(collegeA), true},
		{"student reads foreign college feed denied", student, ResourcePost, ActionReadCollege, CollegeOf(collegeB), false},
		{"officials read foreign college feed denied", officials, ResourcePost, ActionReadCollege, CollegeOf(collegeB), false},
		{"admin reads any college feed", admin, ResourcePost, ActionReadCollege, CollegeOf(collegeB), true},
		{"student reads public feed", student, ResourcePost, ActionReadPublic, Target{}, true},
		{"student reads own posts", student, ResourcePost, ActionRead, Owner(student.ID), true},

		// Comments and reactions: any authenticated actor.
		{"student comments", student, ResourceComment, ActionCreate, Target{}, true},
		{"alumni lists comments", alumni, ResourceComment, ActionList, Target{}, true},
		{"officials delete comment role gate passes", officials, ResourceComment, ActionDelete, Target{}, true},
		{"student reacts", student, ResourceReaction, ActionCreate, Target{}, true},
		{"student removes reaction", student, ResourceReaction, ActionDelete, Target{}, true},
		{"student reads reaction counts", student, ResourceReaction, ActionList, Target{}, true},

		// Alumni profile creation branches per role.
		{"admin creates alumni anywhere", admin, ResourceAlumni, ActionCreate,
			Target{OwnerID: &student.ID, CollegeID: &collegeB}, true},
		{"officials create alumni in own college", officials, ResourceAlumni, ActionCreate,
			Target{OwnerID: &alumni.ID, CollegeID: &collegeA}, true},
		{"officials create alumni in foreign college denied", officials, ResourceAlumni, ActionCreate,
			Target{CollegeID: &collegeB}, false},
		{"alumni create own profile", alumni, ResourceAlumni, ActionCreate,
			Target{OwnerID: &alumni.ID, CollegeID: &collegeA}, true},
		{"alumni create profile for other user denied", alumni, ResourceAlumni, ActionCreate,
			Target{OwnerID: &student.ID, CollegeID: &collegeA}, false},
		{"alumni create profile in foreign college denied", alumni, ResourceAlumni, ActionCreate,
			Target{OwnerID: &alumni.ID, CollegeID: &collegeB}, false},
		{"student creates alumni denied", student, ResourceAlumni, ActionCreate, Target{}, false},

		// Alumni profile management.
		{"admin lists all alumni", admin, ResourceAlumni, ActionReadAll, Target{}, true},
		{"alumni list all alumni denied", alumni, ResourceAlumni, ActionReadAll, Target{}, false},
		{"alumni browse own college", alumni, ResourceAlumni, ActionReadCollege, CollegeOf(collegeA), true},
		{"alumni browse foreign college denied", alumni, ResourceAlumni, ActionReadCollege, CollegeOf(collegeB), false},
		{"admin browses foreign college", admin, ResourceAlumni, ActionReadCollege, CollegeOf(collegeB), true},
		{"student updates alumni denied", student, ResourceAlumni, ActionUpdate, Target{}, false},
		{"officials update alumni", officials, ResourceAlumni, ActionUpdate, Target{}, true},

		// Student profile: the fixed allow-list, not the always-true OR.
		{"student creates student profile", student, ResourceStudent, ActionCreate, Target{}, true},
		{"officials create student profile", officials, ResourceStudent, ActionCreate, Target{}, true},
		{"admin creates student profile", admin, ResourceStudent, ActionCreate, Target{}, true},
		{"alumni create student profile denied", alumni, ResourceStudent, ActionCreate, Target{}, false},
		{"alumni update student profile denied", alumni, ResourceStudent, ActionUpdate, Target{}, false},
		{"student deletes student profile", student, ResourceStudent, ActionDelete, Target{}, true},
		{"admin lists students", admin, ResourceStudent, ActionReadAll, Target{}, true},
		{"student lists students denied", student, ResourceStudent, ActionReadAll, Target{}, false},
		{"student browses own college students", student, ResourceStudent, ActionReadCollege, CollegeOf(collegeA), true},
		{"student browses foreign college students denied", student, ResourceStudent, ActionReadCollege, CollegeOf(collegeB), false},
		{"admin browses foreign college students", admin, ResourceStudent, ActionReadCollege, CollegeOf(collegeB), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, tc.res, tc.act, tc.target)
			if tc.allowed {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
			}
		})
	}
}

func TestUnknownPairsFailClosed(t *testing.T) {
	admin := actorWith(models.RoleAdmin, collegeA)

	err := Authorize(admin, Resource("widget"), ActionCreate, Target{})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = Authorize(admin, ResourceCollege, Action("transmogrify"), Target{})
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDenialMessageDoesNotLeakTarget(t *testing.T) {
	student := actorWith(models.RoleStudent, collegeA)
	owner := uuid.New()

	err := Authorize(student, ResourceUser, ActionRead, Owner(owner))
	require.Error(t, err)
	require.Equal(t, "not authorized to perform read on user resource", err.Error())
	require.NotContains(t, err.Error(), owner.String())
	require.NotContains(t, err.Error(), collegeA.String())
}

func TestAdminDoesNotBypassSelfOnly(t *testing.T) {
	// ADMIN is superior for administrative resources but is not the owner of
	// user-generated content; the self-only rule applies to admins too.
	admin := actorWith(models.RoleAdmin, collegeA)
	other := uuid.New()

	err := Authorize(admin, ResourcePost, ActionRead, Owner(other))
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
