package app

// Command は portal バイナリのサブコマンド。
type Command string

const (
	// CommandServe はポータルAPIを起動する。引数なしの場合もこれになる。
	CommandServe Command = "serve"
	// CommandMigrate は同梱のSQLiteスキーマを使い捨てのインメモリDBに適用し、
	// 適用後のバージョンを報告する。データは残らない。
	CommandMigrate Command = "migrate"
	// CommandHealthcheck は起動中のポータルの /health を叩く。
	// distrolessイメージにはcurlがないため、DockerのHEALTHCHECKから使う。
	CommandHealthcheck Command = "healthcheck"
)

// ParseCommand は os.Args[1:] の先頭からサブコマンドを決める。
// 2番目以降の引数は見ない。未知の名前は serve として扱う。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandServe
	}

	switch Command(args[0]) {
	case CommandMigrate:
		return CommandMigrate
	case CommandHealthcheck:
		return CommandHealthcheck
	default:
		return CommandServe
	}
}
