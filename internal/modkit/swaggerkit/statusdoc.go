package swaggerkit

// statusDoc describes the local status API mounted under /api/v1
const statusDoc = `{
  "openapi": "3.0.3",
  "info": {"title": "wifiman status API", "version": "dev"},
  "servers": [{"url": "/api/v1"}],
  "paths": {
    "/status": {
      "get": {
        "summary": "Provisioning state, current network and address",
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/StatusEnvelope"}}}}}
      }
    },
    "/networks": {
      "get": {
        "summary": "Saved network names, sorted; secrets are never returned",
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Networks"}}}}}
      }
    },
    "/credentials": {
      "post": {
        "summary": "Save or replace one credential",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CredentialInput"}}}},
        "responses": {
          "201": {"description": "Saved"},
          "400": {"description": "Validation failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/disconnect": {
      "post": {
        "summary": "Drop the current association",
        "responses": {"204": {"description": "Disconnected"}}
      }
    }
  },
  "components": {
    "schemas": {
      "CredentialInput": {
        "type": "object",
        "required": ["ssid"],
        "properties": {
          "ssid": {"type": "string", "minLength": 1, "maxLength": 32},
          "password": {"type": "string", "maxLength": 63}
        }
      },
      "Status": {
        "type": "object",
        "properties": {
          "state": {"type": "string", "enum": ["idle", "checking_saved", "scanning", "trying_candidate", "portaling", "connected", "rebooting"]},
          "associated": {"type": "boolean"},
          "network": {"type": "string"},
          "ip": {"type": "string"},
          "netmask": {"type": "string"},
          "gateway": {"type": "string"},
          "dns": {"type": "string"},
          "since": {"type": "string", "format": "date-time"}
        }
      },
      "Networks": {
        "type": "object",
        "properties": {
          "networks": {"type": "array", "items": {"type": "string"}}
        }
      },
      "StatusEnvelope": {
        "type": "object",
        "properties": {
          "status_code": {"type": "integer"},
          "status": {"type": "string"},
          "request_id": {"type": "string"},
          "data": {"$ref": "#/components/schemas/Status"}
        }
      }
    }
  }
}`
