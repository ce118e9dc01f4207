package client

// Endpoint paths, relative to the configured server URL.
const (
	PathIdentifyUser     = "/auth/identify_user"
	PathRegisterUser     = "/auth/register_user"
	PathSignInUser       = "/auth/sign_in_user"
	PathUpdateUser       = "/auth/update_user"
	PathAllUsers         = "/auth/all_users"
	PathChangeUserStatus = "/auth/change_user_status"
)
