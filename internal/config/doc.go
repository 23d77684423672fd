// Package config manages user-level settings stored at
// ~/.skill-launcher/config.yaml: the project root fallback and the skill
// directory exclusion patterns. Environment variables with the
// SKILL_LAUNCHER_ prefix override file values, and a .env file in the working
// directory is loaded before the environment is consulted.
package config
