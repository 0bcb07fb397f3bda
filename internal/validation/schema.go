package validation

// suggestionSchema is the JSON Schema every raw generation payload must
// satisfy before coercion. Kept inline so the validator has no filesystem
// dependency.
const suggestionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "TailoredSuggestions",
  "type": "object",
  "required": ["headline", "roles"],
  "properties": {
    "headline": {"type": "string", "minLength": 1},
    "summary": {"type": "string"},
    "skill_groups": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category"],
        "properties": {
          "category": {"type": "string", "minLength": 1},
          "skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "roles": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company", "title"],
        "properties": {
          "company": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "period": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["institution"],
        "properties": {
          "institution": {"type": "string", "minLength": 1},
          "degree": {"type": "string"},
          "period": {"type": "string"}
        }
      }
    },
    "cover_letter": {"type": "array", "items": {"type": "string"}},
    "keyword_checklist": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["keyword"],
        "properties": {
          "keyword": {"type": "string", "minLength": 1},
          "found": {"type": "boolean"},
          "section": {"type": "string"},
          "suggestion": {"type": "string"}
        }
      }
    },
    "experience_gaps": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["gap"],
        "properties": {
          "gap": {"type": "string", "minLength": 1},
          "suggestion": {"type": "string"},
          "severity": {"type": "string"}
        }
      }
    },
    "recruiter_feedback": {"type": "array", "items": {"type": "string"}},
    "next_actions": {"type": "array", "items": {"type": "string"}}
  }
}`
