package validation

// sweepRequestSchemaJSON is the JSON Schema for the body POSTed to the
// sweep-submission endpoint. Every axis array must be nonempty at
// submission time.
const sweepRequestSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "SweepRequest",
  "type": "object",
  "required": ["models", "prompts", "temperatures", "max_tokens", "timestamp"],
  "additionalProperties": false,
  "properties": {
    "models": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    },
    "prompts": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "string", "minLength": 1 }
    },
    "temperatures": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "number", "minimum": 0 }
    },
    "max_tokens": {
      "type": "array",
      "minItems": 1,
      "items": { "type": "integer", "minimum": 1 }
    },
    "timestamp": {
      "type": "string",
      "minLength": 1
    }
  }
}`
