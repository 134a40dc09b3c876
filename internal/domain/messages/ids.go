// Package messages lists the catalog entries the resolver can select.
// IDs are grouped by feature area through their prefix and must exist in
// every active.<locale>.toml file.
package messages

// ID identifies one entry of the message catalog.
type ID string

// Auth.
const (
	AuthInvalidCredentials          ID = "auth.invalidCredentials"
	AuthTooManyLoginAttempts        ID = "auth.tooManyLoginAttempts"
	AuthTooManyRegistrationAttempts ID = "auth.tooManyRegistrationAttempts"
	AuthTooManyResendAttempts       ID = "auth.tooManyResendAttempts"
	AuthTooManyVerificationAttempts ID = "auth.tooManyVerificationAttempts"
	AuthEmailNotVerified            ID = "auth.emailNotVerified"
	AuthEmailAlreadyVerified        ID = "auth.emailAlreadyVerified"
	AuthEmailVerified               ID = "auth.emailVerified"
	AuthVerificationLinkSent        ID = "auth.verificationLinkSent"
	AuthInvalidVerificationLink     ID = "auth.invalidVerificationLink"
	AuthPasswordResetLinkSent       ID = "auth.passwordResetLinkSent"
	AuthPasswordResetSuccess        ID = "auth.passwordResetSuccess"
	AuthInvalidResetToken           ID = "auth.invalidResetToken"
	AuthUserNotFound                ID = "auth.userNotFound"
	AuthRegistrationSuccess         ID = "auth.registrationSuccess"
	AuthLoggedOut                   ID = "auth.loggedOut"
	AuthSessionExpired              ID = "auth.sessionExpired"
	AuthEmailTaken                  ID = "auth.emailTaken"
	AuthInvalidEmail                ID = "auth.invalidEmail"
	AuthEmailRequired               ID = "auth.emailRequired"
	AuthPasswordRequired            ID = "auth.passwordRequired"
	AuthPasswordMismatch            ID = "auth.passwordMismatch"
	AuthPasswordTooShort            ID = "auth.passwordTooShort"
)

// Profile, including the moderation application form.
const (
	ProfileUpdated                  ID = "profile.updated"
	ProfileNameRequired             ID = "profile.nameRequired"
	ProfileAvatarUploaded           ID = "profile.avatarUploaded"
	ProfileAvatarInvalidImage       ID = "profile.avatarInvalidImage"
	ProfileAvatarTooLarge           ID = "profile.avatarTooLarge"
	ProfileCurrentPasswordIncorrect ID = "profile.currentPasswordIncorrect"
	ProfileApplicationSubmitted     ID = "profile.applicationSubmitted"
	ProfileApplicationExists        ID = "profile.applicationExists"
)

// Common.
const (
	CommonServerError  ID = "common.serverError"
	CommonNetworkError ID = "common.networkError"
	CommonForbidden    ID = "common.forbidden"
	CommonNotFound     ID = "common.notFound"
	CommonInvalidInput ID = "common.invalidInput"
)

// All returns every ID in declaration order. Catalog completeness tests
// iterate over it.
func All() []ID {
	return []ID{
		AuthInvalidCredentials,
		AuthTooManyLoginAttempts,
		AuthTooManyRegistrationAttempts,
		AuthTooManyResendAttempts,
		AuthTooManyVerificationAttempts,
		AuthEmailNotVerified,
		AuthEmailAlreadyVerified,
		AuthEmailVerified,
		AuthVerificationLinkSent,
		AuthInvalidVerificationLink,
		AuthPasswordResetLinkSent,
		AuthPasswordResetSuccess,
		AuthInvalidResetToken,
		AuthUserNotFound,
		AuthRegistrationSuccess,
		AuthLoggedOut,
		AuthSessionExpired,
		AuthEmailTaken,
		AuthInvalidEmail,
		AuthEmailRequired,
		AuthPasswordRequired,
		AuthPasswordMismatch,
		AuthPasswordTooShort,
		ProfileUpdated,
		ProfileNameRequired,
		ProfileAvatarUploaded,
		ProfileAvatarInvalidImage,
		ProfileAvatarTooLarge,
		ProfileCurrentPasswordIncorrect,
		ProfileApplicationSubmitted,
		ProfileApplicationExists,
		CommonServerError,
		CommonNetworkError,
		CommonForbidden,
		CommonNotFound,
		CommonInvalidInput,
	}
}
