// Package messages holds the user-facing texts for validation markers and
// flow notices, per language.
//
// Catalogs are YAML documents named after their language tag:
//
//	fields:
//	  cpf:
//	    - kind: required
//	      message: O campo CPF é obrigatório!
//	    - kind: invalido
//	      message: CPF inválido.
//	notices:
//	  registration_success: Cadastro realizado com sucesso!
//
// Entries keep their declared order so forms can show the most relevant
// message first. Bundled returns the pt-BR and en catalogs shipped with the
// package; Load reads catalogs from any fs.FS.
//
//	cat, err := messages.Bundled()
//	lang := cat.Match(r.Header.Get("Accept-Language"))
//	texts := cat.Messages(lang, "cpf", container.Errors("cpf"))
package messages
