//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PasswordHasher=PasswordHasher"
package encoding

type PasswordHasher interface {
	Hash(password string) (string, error)
	CompareHash(hash, password string) bool
}
