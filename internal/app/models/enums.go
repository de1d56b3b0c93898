package models

// Role defines the user role type
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleOfficials Role = "OFFICIALS"
	RoleAlumni    Role = "ALUMNI"
	RoleStudent   Role = "STUDENT"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOfficials, RoleAlumni, RoleStudent:
		return true
	}
	return false
}

// PostType defines the type of a feed post
type PostType string

const (
	PostTypeText         PostType = "TEXT"
	PostTypeAnnouncement PostType = "ANNOUNCEMENT"
	PostTypeOpportunity  PostType = "OPPORTUNITY"
	PostTypeQuery        PostType = "QUERY"
	PostTypeEvent        PostType = "EVENT"
)

// IsValid reports whether the post type is one of the known types
func (t PostType) IsValid() bool {
	switch t {
	case PostTypeText, PostTypeAnnouncement, PostTypeOpportunity, PostTypeQuery, PostTypeEvent:
		return true
	}
	return false
}

// PostVisibility defines who can see a feed post
type PostVisibility string

const (
	VisibilityPublic  PostVisibility = "PUBLIC"
	VisibilityCollege PostVisibility = "COLLEGE"
)

// IsValid reports whether the visibility is one of the known values
func (v PostVisibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityCollege
}

// ReactionType defines the reaction a user can leave on a post
type ReactionType string

const (
	ReactionHeHe   ReactionType = "HE_HE"
	ReactionLoveIt ReactionType = "LOVE_IT"
	ReactionDamn   ReactionType = "DAMN"
	ReactionOfo    ReactionType = "OFO"
)

// IsValid reports whether the reaction is one of the known reactions
func (r ReactionType) IsValid() bool {
	switch r {
	case ReactionHeHe, ReactionLoveIt, ReactionDamn, ReactionOfo:
		return true
	}
	return false
}

// Branch defines the academic branch of a student
type Branch string

const (
	BranchCSE        Branch = "CSE"
	BranchIT         Branch = "IT"
	BranchCivil      Branch = "CIVIL"
	BranchMechanical Branch = "MECHANICAL"
	BranchElectrical Branch = "ELECTRICAL"
	BranchECE        Branch = "ECE"
)

// IsValid reports whether the branch is one of the known branches
func (b Branch) IsValid() bool {
	switch b {
	case BranchCSE, BranchIT, BranchCivil, BranchMechanical, BranchElectrical, BranchECE:
		return true
	}
	return false
}
