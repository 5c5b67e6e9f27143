// Package config loads the file based settings used by the captcha-theme
// command: default theme, option overrides and the directories holding
// translation files and templates.
package config
