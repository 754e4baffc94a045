// Package testutil provides fakes and helpers shared by zshboot's tests.
package testutil
