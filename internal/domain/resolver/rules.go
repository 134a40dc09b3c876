package resolver

import (
	"regexp"

	"authmsg/internal/domain/messages"
)

// exactRules are written in canonical form. New normalizes them anyway.
var exactRules = map[string]messages.ID{
	"these credentials do not match our records":                  messages.AuthInvalidCredentials,
	"invalid credentials":                                         messages.AuthInvalidCredentials,
	"the provided credentials are incorrect":                      messages.AuthInvalidCredentials,
	"too many login attempts please try again later":              messages.AuthTooManyLoginAttempts,
	"too many registration attempts please try again later":       messages.AuthTooManyRegistrationAttempts,
	"too many verification emails sent please try again later":    messages.AuthTooManyResendAttempts,
	"too many verification attempts please try again later":       messages.AuthTooManyVerificationAttempts,
	"your email address is not verified":                          messages.AuthEmailNotVerified,
	"email not verified":                                          messages.AuthEmailNotVerified,
	"email already verified":                                      messages.AuthEmailAlreadyVerified,
	"email verified successfully":                                 messages.AuthEmailVerified,
	"verification link sent":                                      messages.AuthVerificationLinkSent,
	"a new verification link has been sent to your email address": messages.AuthVerificationLinkSent,
	"invalid verification link":                                   messages.AuthInvalidVerificationLink,
	"we have emailed your password reset link":                    messages.AuthPasswordResetLinkSent,
	"your password has been reset":                                messages.AuthPasswordResetSuccess,
	"this password reset token is invalid":                        messages.AuthInvalidResetToken,
	"we can't find a user with that email address":                messages.AuthUserNotFound,
	"registration successful":                                     messages.AuthRegistrationSuccess,
	"logged out successfully":                                     messages.AuthLoggedOut,
	"unauthenticated":                                             messages.AuthSessionExpired,
	"the email has already been taken":                            messages.AuthEmailTaken,
	"the email field must be a valid email address":               messages.AuthInvalidEmail,
	"the email field is required":                                 messages.AuthEmailRequired,
	"the password field is required":                              messages.AuthPasswordRequired,
	"the password field confirmation does not match":              messages.AuthPasswordMismatch,
	"the password field must be at least 8 characters":            messages.AuthPasswordTooShort,

	"profile updated successfully":                             messages.ProfileUpdated,
	"the name field is required":                               messages.ProfileNameRequired,
	"avatar uploaded successfully":                             messages.ProfileAvatarUploaded,
	"the avatar field must be an image":                        messages.ProfileAvatarInvalidImage,
	"the avatar field must not be greater than 2048 kilobytes": messages.ProfileAvatarTooLarge,
	"the current password is incorrect":                        messages.ProfileCurrentPasswordIncorrect,
	"application submitted successfully":                       messages.ProfileApplicationSubmitted,
	"you have already submitted an application":                messages.ProfileApplicationExists,

	"server error":                messages.CommonServerError,
	"internal server error":       messages.CommonServerError,
	"network error":               messages.CommonNetworkError,
	"this action is unauthorized": messages.CommonForbidden,
	"forbidden":                   messages.CommonForbidden,
	"not found":                   messages.CommonNotFound,
	"the given data was invalid":  messages.CommonInvalidInput,
}

// partialRules are evaluated in order against the canonical key and the first
// match wins. Patterns overlap: a specific rule must stay above any broader
// rule that would also match its messages (e.g. "too many ... login" above
// "too many requests").
var partialRules = []Rule{
	{regexp.MustCompile(`too many.*login`), messages.AuthTooManyLoginAttempts},
	{regexp.MustCompile(`too many.*regist`), messages.AuthTooManyRegistrationAttempts},
	{regexp.MustCompile(`too many.*(resend|verification e-?mail)`), messages.AuthTooManyResendAttempts},
	{regexp.MustCompile(`too many.*verif`), messages.AuthTooManyVerificationAttempts},
	{regexp.MustCompile(`too many (requests|attempts)`), messages.AuthTooManyVerificationAttempts},
	{regexp.MustCompile(`credentials`), messages.AuthInvalidCredentials},
	{regexp.MustCompile(`already verified`), messages.AuthEmailAlreadyVerified},
	{regexp.MustCompile(`not verified|verify your email`), messages.AuthEmailNotVerified},
	{regexp.MustCompile(`verification (link|token|code).*(invalid|expired)|(invalid|expired).*verification`), messages.AuthInvalidVerificationLink},
	{regexp.MustCompile(`verification link.*sent|sent.*verification link`), messages.AuthVerificationLinkSent},
	{regexp.MustCompile(`reset (token|link).*(invalid|expired)|(invalid|expired).*reset (token|link)`), messages.AuthInvalidResetToken},
	{regexp.MustCompile(`(emailed|sent).*reset link`), messages.AuthPasswordResetLinkSent},
	{regexp.MustCompile(`password.*(has been|was) reset`), messages.AuthPasswordResetSuccess},
	{regexp.MustCompile(`(can't|cannot|could not|unable to) find.*user|user.*not found`), messages.AuthUserNotFound},
	{regexp.MustCompile(`email.*(already been taken|already (exists|registered|in use))`), messages.AuthEmailTaken},
	{regexp.MustCompile(`email.*valid email|invalid email`), messages.AuthInvalidEmail},
	{regexp.MustCompile(`email.*required`), messages.AuthEmailRequired},
	{regexp.MustCompile(`current password.*(incorrect|invalid|wrong|does not match)`), messages.ProfileCurrentPasswordIncorrect},
	{regexp.MustCompile(`password.*confirmation.*match|passwords do not match`), messages.AuthPasswordMismatch},
	{regexp.MustCompile(`password.*at least`), messages.AuthPasswordTooShort},
	{regexp.MustCompile(`password.*required`), messages.AuthPasswordRequired},
	{regexp.MustCompile(`name.*required`), messages.ProfileNameRequired},
	{regexp.MustCompile(`avatar.*(image|mimes|type)`), messages.ProfileAvatarInvalidImage},
	{regexp.MustCompile(`avatar.*(greater than|too large|size)`), messages.ProfileAvatarTooLarge},
	{regexp.MustCompile(`already (submitted|applied)|application.*(exists|pending)`), messages.ProfileApplicationExists},
	{regexp.MustCompile(`application.*submitted`), messages.ProfileApplicationSubmitted},
	{regexp.MustCompile(`unauthenticated|unauthori[sz]ed|session.*expired|token.*expired`), messages.AuthSessionExpired},
	{regexp.MustCompile(`forbidden|permission`), messages.CommonForbidden},
	{regexp.MustCompile(`network|failed to fetch|timeout|timed out`), messages.CommonNetworkError},
	{regexp.MustCompile(`server error|internal error|service unavailable|something went wrong`), messages.CommonServerError},
	{regexp.MustCompile(`not found`), messages.CommonNotFound},
}
