// Package docs holds the OpenAPI description of the console API served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/health": {"get": {"summary": "Database health", "responses": {"200": {"description": "healthy"}, "503": {"description": "database down"}}}},
        "/healthz": {"get": {"summary": "Liveness", "responses": {"200": {"description": "alive"}}}},
        "/auth/login": {"post": {"summary": "Sign in with email or mobile and password", "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}], "responses": {"200": {"description": "session token"}, "401": {"description": "LOGIN_FAILED"}, "400": {"description": "missing fields"}}}},
        "/auth/logout": {"post": {"summary": "Sign out", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "signed out"}}}},
        "/me": {"get": {"summary": "Signed-in admin", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "admin"}}}},
        "/menu": {"get": {"summary": "Side menu for the signed-in role", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "menu items"}}}},
        "/api/dashboard": {"get": {"summary": "Landing-page counters", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "stats"}}}},
        "/api/admins": {"get": {"summary": "List admins (super admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "admins"}, "403": {"description": "FORBIDDEN"}}}},
        "/api/admins/diagnose": {"post": {"summary": "Create and remove a throwaway staff admin", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "diagnostic report"}}}},
        "/api/employees": {"get": {"summary": "List employees", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "page", "type": "integer"}, {"in": "query", "name": "search", "type": "string"}], "responses": {"200": {"description": "page"}}}},
        "/api/employers": {"get": {"summary": "List employers with plan status", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "page"}}}},
        "/api/employers/{id}/quota": {"get": {"summary": "Job posting quota", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "quota"}}}},
        "/api/jobs": {"get": {"summary": "List jobs", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "page"}}}},
        "/api/coupons": {"get": {"summary": "List coupons (super admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "coupons"}}}},
        "/api/coupons/{id}/approve": {"post": {"summary": "Approve a pending coupon", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "approved"}, "409": {"description": "not pending"}}}},
        "/api/coupons/{id}/assign": {"post": {"summary": "Assign an approved coupon", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "assigned and failed rows"}}}},
        "/api/commissions": {"get": {"summary": "Commissions scoped by role", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "commissions"}}}},
        "/api/cv-requests/{id}/status": {"put": {"summary": "Change a CV request status", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "body", "name": "status", "required": true, "schema": {"$ref": "#/definitions/cvStatusRequest"}}], "responses": {"200": {"description": "updated"}}}},
        "/api/profile-photos": {"get": {"summary": "Profile photos by status", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "photos"}}}},
        "/api/plans": {"get": {"summary": "List plans", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "plans"}}}},
        "/api/catalogs/{kind}": {"get": {"summary": "List a catalog", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "kind", "type": "string", "required": true}], "responses": {"200": {"description": "items"}, "404": {"description": "unknown catalog"}}}},
        "/api/orders": {"get": {"summary": "Plan orders (super admin, manager)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "page"}, "403": {"description": "FORBIDDEN"}}}},
        "/api/transactions": {"get": {"summary": "Payment transactions (super admin, manager)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "page"}, "403": {"description": "FORBIDDEN"}}}},
        "/api/payment-stats": {"get": {"summary": "Payment statistics with success rate (super admin, manager)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "stats"}, "403": {"description": "FORBIDDEN"}}}},
        "/api/audit": {"get": {"summary": "Audit log (super admin)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "entries"}}}},
        "/api/exports": {"post": {"summary": "Export a list screen to CSV", "security": [{"BearerAuth": []}], "parameters": [{"in": "body", "name": "export", "required": true, "schema": {"$ref": "#/definitions/exportRequest"}}], "responses": {"201": {"description": "export with download URL"}, "503": {"description": "object storage not configured"}}}}
    },
    "definitions": {
        "loginRequest": {"type": "object", "properties": {"identifier": {"type": "string"}, "password": {"type": "string"}}},
        "cvStatusRequest": {"type": "object", "properties": {"current": {"type": "string"}, "status": {"type": "string", "enum": ["pending", "in_progress", "completed", "rejected"]}}},
        "exportRequest": {"type": "object", "properties": {"kind": {"type": "string"}, "search": {"type": "string"}, "status": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Job Admin Console API",
	Description:      "Admin console for the job portal: staff, employers, coupons, commissions and payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
