package services

import (
	"log"

	"clubmanager-api/packages/core/models"
)

// Mailer sends club invitation emails. The SMTP implementation lives in the
// auth package; tests inject a recording fake.
type Mailer interface {
	SendClubInvitation(to, clubName, inviteCode string) error
}

type InvitationService struct {
	clubService *ClubService
	mailer      Mailer
}

func NewInvitationService(clubService *ClubService, mailer Mailer) *InvitationService {
	return &InvitationService{
		clubService: clubService,
		mailer:      mailer,
	}
}

// InviteMember emails the club's invite code to the given address. The invite
// code is shared per club, so no invitation record is stored.
func (s *InvitationService) InviteMember(clubID uint, email string) (*models.Club, error) {
	club, err := s.clubService.GetClubByID(clubID)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendClubInvitation(email, club.Name, club.InviteCode); err != nil {
		return nil, err
	}

	log.Printf("Invitation for club %q sent to %s", club.Name, email)
	return club, nil
}
