// Package authz is the authorization decision engine: a declarative policy
// table keyed by (resource, action), evaluated by a single pure function
// over the acting user and the facts of the targeted row. Route handlers and
// services consult this table instead of re-deriving role checks inline.
package authz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/campusbridge/campusbridge/internal/app/models"
	"github.com/campusbridge/campusbridge/internal/pkg/apperrors"
	"github.com/campusbridge/campusbridge/internal/pkg/logger"
)

// Actor is the authenticated caller, reconstructed per request from the
// verified token claims. It is never persisted here.
type Actor struct {
	ID        uuid.UUID
	Role      models.Role
	CollegeID uuid.UUID
}

// Target carries the row facts a rule may need: who owns the targeted
// resource and which college it belongs to. Either may be nil when the rule
// does not need it (or the request does not name a specific row).
type Target struct {
	OwnerID   *uuid.UUID
	CollegeID *uuid.UUID
}

// Resource names the protected resource kinds.
type Resource string

const (
	ResourceCollege  Resource = "college"
	ResourceUser     Resource = "user"
	ResourcePost     Resource = "post"
	ResourceComment  Resource = "comment"
	ResourceReaction Resource = "reaction"
	ResourceAlumni   Resource = "alumni"
	ResourceStudent  Resource = "student"
)

// Action names the operations a rule can gate.
type Action string

const (
	ActionCreate      Action = "create"
	ActionRead        Action = "read"
	ActionReadAll     Action = "read_all"
	ActionReadCollege Action = "read_college"
	ActionReadPublic  Action = "read_public"
	ActionList        Action = "list"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
)

// rule is one row of the decision table. An empty roles list means any
// authenticated actor. selfOnly requires the target owner to be the actor.
// collegeScoped requires the target college to be the actor's own, with an
// admin bypass. check is an extra per-rule condition for rules whose
// branching does not fit the three flags.
type rule struct {
	roles         []models.Role
	selfOnly      bool
	collegeScoped bool
	check         func(Actor, Target) bool
}

var adminOnly = rule{roles: []models.Role{models.RoleAdmin}}

// publisherRoles may author feed posts. Post update/delete carries the same
// role gate here; ownership is enforced at the repository fetch predicate so
// that a non-owner's attempt is indistinguishable from a missing post.
var publisherRoles = []models.Role{models.RoleAdmin, models.RoleOfficials, models.RoleAlumni}

// studentManagerRoles is the student-profile gate. The prior implementation
// OR-ed role inequalities, which allowed every role; this is the intended
// allow-list.
var studentManagerRoles = []models.Role{models.RoleAdmin, models.RoleStudent, models.RoleOfficials}

var policy = map[Resource]map[Action]rule{
	ResourceCollege: {
		ActionCreate:  adminOnly,
		ActionRead:    adminOnly,
		ActionReadAll: adminOnly,
		ActionUpdate:  adminOnly,
		ActionDelete:  adminOnly,
	},
	ResourceUser: {
		ActionRead:   {selfOnly: true},
		ActionList:   adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourcePost: {
		ActionCreate:      {roles: publisherRoles},
		ActionUpdate:      {roles: publisherRoles},
		ActionDelete:      {roles: publisherRoles},
		ActionRead:        {selfOnly: true},
		ActionReadCollege: {collegeScoped: true},
		ActionReadPublic:  {},
	},
	ResourceComment: {
		ActionCreate: {},
		ActionList:   {},
		ActionDelete: {},
	},
	ResourceReaction: {
		ActionCreate: {},
		ActionDelete: {},
		ActionList:   {},
	},
	ResourceAlumni: {
		ActionRead:        {selfOnly: true},
		ActionReadAll:     adminOnly,
		ActionReadCollege: {collegeScoped: true},
		ActionCreate: {
			roles: []models.Role{models.RoleAdmin, models.RoleOfficials, models.RoleAlumni},
			check: alumniCreateAllowed,
		},
		ActionUpdate: {roles: []models.Role{models.RoleAdmin, models.RoleOfficials, models.RoleAlumni}},
		ActionDelete: {roles: []models.Role{models.RoleAdmin, models.RoleOfficials, models.RoleAlumni}},
	},
	ResourceStudent: {
		ActionRead:        {selfOnly: true},
		ActionReadAll:     adminOnly,
		ActionReadCollege: {collegeScoped: true},
		ActionCreate:      {roles: studentManagerRoles},
		ActionUpdate:      {roles: studentManagerRoles},
		ActionDelete:      {roles: studentManagerRoles},
	},
}

// alumniCreateAllowed branches per role: ADMIN may create for any user and
// college; OFFICIALS only within their own college; ALUMNI only their own
// profile within their own college.
func alumniCreateAllowed(actor Actor, target Target) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleOfficials:
		return target.CollegeID == nil || *target.CollegeID == actor.CollegeID
	case models.RoleAlumni:
		if target.OwnerID != nil && *target.OwnerID != actor.ID {
			return false
		}
		return target.CollegeID == nil || *target.CollegeID == actor.CollegeID
	}
	return false
}

// Authorize decides whether actor may perform action on the resource
// identified by target. It returns nil on allow and a permission-denied
// error with a generic, non-leaking message on deny. Denials log the
// resource, action and actor id; the message never reveals the target's
// owner or college. Unknown (resource, action) pairs fail closed.
func Authorize(actor Actor, res Resource, act Action, target Target) error {
	actions, ok := policy[res]
	if !ok {
		return deny(actor, res, act, "unknown resource")
	}
	r, ok := actions[act]
	if !ok {
		return deny(actor, res, act, "unknown action")
	}

	if len(r.roles) > 0 && !roleIn(actor.Role, r.roles) {
		return deny(actor, res, act, "role not permitted")
	}

	if r.selfOnly && target.OwnerID != nil && *target.OwnerID != actor.ID {
		return deny(actor, res, act, "not the resource owner")
	}

	if r.collegeScoped && actor.Role != models.RoleAdmin &&
		target.CollegeID != nil && *target.CollegeID != actor.CollegeID {
		return deny(actor, res, act, "foreign college")
	}

	if r.check != nil && !r.check(actor, target) {
		return deny(actor, res, act, "rule condition failed")
	}

	return nil
}

func roleIn(role models.Role, roles []models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func deny(actor Actor, res Resource, act Action, reason string) error {
	logger.Info().
		Str("resource", string(res)).
		Str("action", string(act)).
		Str("actorId", actor.ID.String()).
		Str("role", string(actor.Role)).
		Str("reason", reason).
		Msg("Authorization denied")

	return apperrors.NewForbiddenError(
		fmt.Sprintf("not authorized to perform %s on %s resource", act, res))
}

// Owner is a convenience for building a Target from an owner id.
func Owner(id uuid.UUID) Target {
	return Target{OwnerID: &id}
}

// CollegeOf is a convenience for building a Target from a college id.
func CollegeOf(id uuid.UUID) Target {
	return Target{CollegeID: &id}
}
