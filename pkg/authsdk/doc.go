/*
Package authsdk provides the wire types and a client for the Pitwall
authentication service.

# Overview

The service accepts and returns camelCase JSON. Every response carries a
"success" flag; failures add an "error" code and a user-safe "message".
The same types are used by the server handlers to encode responses and by
SDKClient to decode them, so the two cannot drift apart.

	client := authsdk.NewSDKClient("https://ops.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Create the first administrator (one-time setup)
	admin, err := client.Bootstrap(ctx, bootstrapToken, authsdk.BootstrapRequest{...})

# Two-phase login

Login is a two step protocol when the account has two-factor authentication
active. The first call with email and password returns a pending response
(RequiresTwoFactor set, no access token). The caller resubmits with the
current TOTP code:

	res, err := client.Login(ctx, authsdk.LoginRequest{Email: email, Password: pw})
	if err != nil {
		return err
	}
	if res.RequiresTwoFactor {
		res, err = client.Login(ctx, authsdk.LoginRequest{Email: email, Password: pw, Token: code})
	}

A wrong code comes back as an *APIError with Code ErrorCodeInvalidTwoFactorCode
and RequiresTwoFactor still set, so the caller can retry.

# Two-factor enrollment

	enr, err := client.SetupTOTP(ctx, authsdk.TOTPSetupRequest{UserID: id, Password: pw})
	// show enr.QRCodeImage, then
	_, err = client.ConfirmTOTP(ctx, authsdk.TOTPVerifyRequest{UserID: id, Token: code})

# Error Handling

Non-2xx responses are returned as *APIError:

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeNotApproved {
		// waiting on an administrator
	}
*/
package authsdk
