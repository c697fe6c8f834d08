package game

import "fmt"

// errMissing 启动阶段缺少必需协作者时的错误
func errMissing(what string) error {
	return fmt.Errorf("required %s is missing", what)
}
