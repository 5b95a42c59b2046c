// Package text holds the user-facing messages, in Portuguese, and the
// Painter used to color option values.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operating system messages.
const (
	OSOnNextBootDescription = "sistema operacional a ser iniciado na próxima inicialização do computador"
	OSWasUpdatedTo          = "foi atualizado para"
	OSUndefined             = "indefinido"
)

// Display messages.
const (
	DisplayOnNextWindowsBootDescription = "tela a ser usada na próxima inicialização do Windows"
	DisplayCurrent                      = "tela atual"
	DisplayWasUpdatedTo                 = "foi atualizada para"
	DisplayUndefined                    = "indefinida"
)

// Display switching messages.
const (
	SwitchNotSupported     = "A troca de tela não é suportada no sistema operacional atual"
	SwitchTo               = "Trocando de tela para"
	SwitchTakingTooLong    = "A tela não trocou no tempo limite"
	SwitchFailed           = "A troca de tela falhou"
	SwitchIsAlreadyCurrent = "já é a tela atual"
	SwitchDescription      = "troca de tela"
)

// Reboot action messages.
const (
	RebootActionDescription = "ação"
	RebootActionFailed      = "A ação de reinicialização falhou"
	Rebooting               = "Reiniciando"
	ShuttingDown            = "Desligando"
	NotReally               = "...mas não de verdade!"
	NoRebootAction          = "nenhuma"
)

// Argument errors.
const (
	InvalidArguments    = "Argumentos inválidos.\nPara ajuda, execute: my-reboot --help"
	UnexpectedArgument  = "Argumento inesperado"
	ExceedingArgument   = "Argumento em excesso"
	MissingArgument     = "Argumento faltando"
	InvalidScriptNumber = "Número inválido de script para o sistema operacional atual"
)

// Configure messages.
const (
	ConfigureReading       = "Lendo"
	ConfigureSwitching     = "Trocando de tela..."
	ConfigureSwitchingBack = "Voltando para a tela inicial..."
	ConfigureSaving        = "Salvando configurações..."
	ConfigureDone          = "Configuração finalizada."
	ConfigureEntryNotFound = "Entrada não encontrada para"
)

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// RepeatedOption is the message for an axis given twice.
func RepeatedOption(axis string) string {
	return "A opção de " + axis + " não pode ser usada mais de uma vez"
}

// QuotedList renders codes as "a" ou "b".
func QuotedList(codes []string) string {
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, " ou ")
}

// SavedDisplayIs describes the display saved for the next Windows boot.
func SavedDisplayIs(value string) string {
	return "A " + DisplayOnNextWindowsBootDescription + " é " + value
}

// SavedDisplayIsCurrent is SavedDisplayIs when value is already active.
func SavedDisplayIsCurrent(value string) string {
	return SavedDisplayIs(value) + ", que " + SwitchIsAlreadyCurrent
}

// Dialog labels.
const (
	DialogActionTitle  = "Ação"
	DialogSwitchBefore = "trocar de tela antes"
	DialogKeepUsing    = "continuar usando"
	DialogBasicHelp    = "↑/↓ escolhe • enter executa • x modo avançado • esc sai"
	DialogAdvancedHelp = "↑/↓ escolhe o grupo • ←/→ escolhe a opção • enter confirma • x modo básico • esc sai"
)
