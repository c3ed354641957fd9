package salarycycle

import (
	"fmt"
	"time"
)

const (
	CycleViewKeyPrefix = "salary_cycle:view:"
	cycleViewTTL       = 10 * time.Minute
)

func GetCycleViewKey(year, month int) string {
	return fmt.Sprintf("%s%d-%02d", CycleViewKeyPrefix, year, month)
}
