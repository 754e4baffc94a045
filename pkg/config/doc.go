// Package config assembles zshboot's configuration once at startup.
// Sources are layered with koanf: embedded defaults, the optional user
// config file, ZSHBOOT_* variables and finally the legacy rc-file variables
// (ZSHRC_LOG_LEVEL, ZSHRC_FORCE_UPDATE, SSH_CONNECTION/SSH_TTY).
package config
