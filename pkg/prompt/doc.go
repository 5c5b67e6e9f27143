// Package prompt collects captcha options interactively. The survey backed
// Driver talks to the terminal; tests substitute their own.
package prompt
