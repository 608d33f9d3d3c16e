package usecase

// Export private functions for testing

var SessionTokenFromHeader = sessionTokenFromHeader

var InvitationMessage = invitationMessage
