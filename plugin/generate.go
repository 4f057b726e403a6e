package plugin

//go:generate go run -tags hashes_md5 ../internal/tools/hashgen --out .
