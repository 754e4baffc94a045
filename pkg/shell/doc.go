// Package shell generates the zsh glue that `zshboot init zsh` prints:
// environment exports, PATH entries, framework setup, helper functions and
// aliases, and sourcing of the optional ~/.zshrc.local override.
package shell
