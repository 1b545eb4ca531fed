package user

import "haviaa/utils"

var (
	ErrInvalidCredentials = utils.NewAppError(utils.KindValidation, "a valid email is required")
	ErrNameRequired       = utils.NewAppError(utils.KindValidation, "name is required")
	ErrInvalidProfile     = utils.NewAppError(utils.KindValidation, "invalid profile update")
	ErrNotSignedIn        = utils.NewAppError(utils.KindUnauthorized, "session expired, please sign in again")
	ErrCallTimeout        = utils.NewAppError(utils.KindTimeout, "auth service did not respond in time")
)
