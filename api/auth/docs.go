// Package auth holds the OpenAPI document served at /swagger/.
//
// Regenerate after changing handler annotations:
//
//	swag init -g internal/auth/http/router.go -o api/auth --outputTypes go
package auth

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/pitwall"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/admin-approve": {
            "post": {
                "description": "Approves the user and provisions an active TOTP secret. The secret is returned once, for the admin to pass on.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "tags": ["Admin"],
                "summary": "Approve an account",
                "parameters": [
                    {"description": "Target user and acting admin", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.AdminActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Enrollment for the approved user", "schema": {"$ref": "#/definitions/authsdk.AdminApproveResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Session token invalid or required", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "403": {"description": "Caller is not an approved admin", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/admin-reject": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "tags": ["Admin"],
                "summary": "Reject an account",
                "parameters": [
                    {"description": "Target user and acting admin", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.AdminActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "User rejected", "schema": {"$ref": "#/definitions/authsdk.SuccessResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Session token invalid or required", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "403": {"description": "Caller is not an approved admin", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/bootstrap": {
            "post": {
                "description": "Creates the first approved admin. Only available when a bootstrap token is configured, and only until an admin exists.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Bootstrap"],
                "summary": "Bootstrap the first administrator",
                "parameters": [
                    {"type": "string", "description": "Bootstrap token", "name": "X-Bootstrap-Token", "in": "header", "required": true},
                    {"description": "Administrator account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.BootstrapRequest"}}
                ],
                "responses": {
                    "201": {"description": "Administrator created", "schema": {"$ref": "#/definitions/authsdk.BootstrapResponse"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Bad token or already bootstrapped", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "Bootstrap not enabled", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Two-phase login. When the account has two-factor authentication enabled and no token is sent,\nthe response has success=false and requiresTwoFactor=true; resend the credentials with the TOTP code.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials and optional TOTP code", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in, or second factor required", "schema": {"$ref": "#/definitions/authsdk.LoginResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Invalid credentials or two-factor code", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "403": {"description": "Account not approved", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the signed-in user. Fails once the account is no longer approved.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "Sanitized user", "schema": {"$ref": "#/definitions/authsdk.MeResponse"}},
                    "401": {"description": "Missing or invalid session token", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "403": {"description": "Account not approved", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "User no longer exists", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "description": "Creates a pending account. An administrator must approve it before the user can sign in.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register an account",
                "parameters": [
                    {"description": "Name, email and password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Account created, awaiting approval", "schema": {"$ref": "#/definitions/authsdk.RegisterResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/totp-disable": {
            "post": {
                "description": "Clears the stored secret. Requires the password and, while two-factor is active, a current code.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TwoFactor"],
                "summary": "Disable two-factor authentication",
                "parameters": [
                    {"description": "User, password and code", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.TOTPDisableRequest"}}
                ],
                "responses": {
                    "200": {"description": "Two-factor disabled", "schema": {"$ref": "#/definitions/authsdk.SuccessResponse"}},
                    "400": {"description": "Missing fields or code required", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Invalid password or code", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/totp-setup": {
            "post": {
                "description": "Generates a new secret after checking the password. The secret replaces any previous one and stays inactive until confirmed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TwoFactor"],
                "summary": "Start TOTP enrollment",
                "parameters": [
                    {"description": "User and password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.TOTPSetupRequest"}}
                ],
                "responses": {
                    "200": {"description": "Secret, otpauth URL and QR code (shown once)", "schema": {"$ref": "#/definitions/authsdk.EnrollmentResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/totp-verify": {
            "post": {
                "description": "Verifies a code against the pending secret and enables two-factor authentication.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["TwoFactor"],
                "summary": "Confirm TOTP enrollment",
                "parameters": [
                    {"description": "User and current code", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.TOTPVerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Two-factor enabled", "schema": {"$ref": "#/definitions/authsdk.SuccessResponse"}},
                    "400": {"description": "Missing fields or no secret to confirm", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Invalid code", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/api/auth/users": {
            "get": {
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "tags": ["Admin"],
                "summary": "List accounts",
                "parameters": [
                    {"type": "string", "description": "Acting admin", "name": "adminId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "All users, oldest first", "schema": {"$ref": "#/definitions/authsdk.ListUsersResponse"}},
                    "400": {"description": "Missing adminId", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "401": {"description": "Session token invalid or required", "schema": {"$ref": "#/definitions/authsdk.APIError"}},
                    "403": {"description": "Caller is not an approved admin", "schema": {"$ref": "#/definitions/authsdk.APIError"}}
                }
            }
        },
        "/livez": {
            "get": {
                "description": "200 OK while the process is serving",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Checks the credential store and the session signer",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}},
                    "503": {"description": "status, uptime, version, checks - service not ready", "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "authsdk.APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "requiresTwoFactor": {"type": "boolean"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.AdminActionRequest": {
            "type": "object",
            "properties": {
                "adminId": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.AdminApproveResponse": {
            "type": "object",
            "properties": {
                "otpauthUrl": {"type": "string"},
                "qrCodeImage": {"type": "string"},
                "secret": {"type": "string", "example": "JBSWY3DPEHPK3PXP"},
                "success": {"type": "boolean"},
                "userEmail": {"type": "string"},
                "userName": {"type": "string"}
            }
        },
        "authsdk.BootstrapRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "authsdk.BootstrapResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.EnrollmentResponse": {
            "type": "object",
            "properties": {
                "otpauthUrl": {"type": "string"},
                "qrCodeImage": {"type": "string"},
                "secret": {"type": "string", "example": "JBSWY3DPEHPK3PXP"},
                "success": {"type": "boolean"}
            }
        },
        "authsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "signer": {"type": "string"}
            }
        },
        "authsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/authsdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "authsdk.ListUsersResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/authsdk.User"}}
            }
        },
        "authsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "authsdk.LoginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "expiresIn": {"type": "integer"},
                "requiresTwoFactor": {"type": "boolean"},
                "success": {"type": "boolean"},
                "tokenType": {"type": "string"},
                "user": {"$ref": "#/definitions/authsdk.User"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.MeResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "user": {"$ref": "#/definitions/authsdk.User"}
            }
        },
        "authsdk.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "authsdk.RegisterResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "authsdk.TOTPDisableRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "token": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.TOTPSetupRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.TOTPVerifyRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "userId": {"type": "string"}
            }
        },
        "authsdk.User": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string", "example": "user"},
                "status": {"type": "string", "example": "approved"},
                "totpConfirmedAt": {"type": "string"},
                "twoFactorEnabled": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Pitwall Authentication API",
	Description:      "Account registration, admin approval and two-factor login for the SimRacing Operations Hub.\n\nSuccessful logins return an EdDSA-signed session token for the Authorization header.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
