package main

import (
	"github.com/auditkit/ossaudit/cmd"
	"github.com/auditkit/ossaudit/common"
)

func main() {
	defer common.ExitProtection()
	cmd.Execute()
}
