// Package launch resolves tokenized launch blocks into Records and holds them
// in an append-only, time-filtered Collection.
package launch

import (
	"math"
	"time"

	"github.com/papapumpkin/launchplot/internal/orbit"
)

// Source keys of the launch log format.
const (
	KeyID                = "编号"
	KeyManufacturer      = "火箭制造方"
	KeyTime              = "时间"
	KeyLocation          = "位置"
	KeyMissionName       = "任务名"
	KeyTitledName        = "冠名"
	KeyMissionCode       = "任务代号"
	KeyFlightNumber      = "飞行编号"
	KeyLaunchProvider    = "发射提供方"
	KeyLaunchAndPayload  = "发射与载荷"
	KeyLaunchAndOperate  = "发射与运营"
	KeyPayloadDeveloper  = "载荷研制方"
	KeyPayloadOperator   = "载荷运营方"
	KeyPayloadInfo       = "载荷信息"
	KeyPrimaryPayload    = "主载荷信息"
	KeySecondaryPayload  = "搭车载荷信息"
	KeyPayloadMass       = "载荷质量"
	KeyLauncher          = "载具"
	KeyResult            = "结果"
	KeyRecoveryResult    = "结果(发射与回收)"
	KeyRecoveryShip      = "回收船"
	KeyFailureReason     = "失败原因"
	KeyRemarks           = "备注"
	KeyOrbit             = "轨道"
	KeyOrbitFinalStage   = "轨道(末级)"
	KeyInitialOrbit      = "初始轨道"
	KeyInitialOrbitGuess = "初始轨道(预测)"
	KeyActualOrbit       = "实际轨道"
	KeyExpectedOrbit     = "预期轨道"
	KeyOperationalOrbit  = "运营轨道"
)

// SuccessToken is the only result value counted as a successful launch.
const SuccessToken = "成功"

// PayloadInfoSeparator joins primary and secondary payload descriptions.
const PayloadInfoSeparator = "；"

// OrbitKeys lists orbit keys in priority order; the first non-empty wins.
var OrbitKeys = []string{
	KeyOrbitFinalStage,
	KeyInitialOrbit,
	KeyActualOrbit,
	KeyExpectedOrbit,
	KeyOperationalOrbit,
	KeyOrbit,
	KeyInitialOrbitGuess,
}

// Record is one resolved launch. It is not modified after being appended to
// a Collection.
type Record struct {
	ID               string
	Manufacturer     string // country of the rocket manufacturer
	Location         string
	MissionName      string
	FlightNumber     string
	LaunchProvider   string
	PayloadOperator  string
	PayloadDeveloper string
	PayloadInfo      string
	PayloadMass      []float64 // tonnes, one entry per payload
	Launcher         string
	Orbit            string
	Success          bool
	Time             time.Time // UTC
	Remarks          string
	RecoveryResult   string
	RecoveryShip     string
	FailureReason    string

	// Physics is nil for failed launches and for orbits that could not be
	// evaluated.
	Physics *orbit.Result
}

// SpecificEnergy returns the highest-leg specific orbital energy in J/kg.
func (r Record) SpecificEnergy() float64 {
	if r.Physics == nil {
		return 0
	}
	return r.Physics.SpecificEnergy
}

// RelativeEnergy returns the relative specific energy in 10 kJ/kg.
func (r Record) RelativeEnergy() int64 {
	if r.Physics == nil {
		return 0
	}
	return r.Physics.RelativeEnergy
}

// DeltaV returns the ideal delta-v in m/s.
func (r Record) DeltaV() int64 {
	if r.Physics == nil {
		return 0
	}
	return r.Physics.DeltaV
}

// TotalEnergy returns the total orbital energy in 10 MJ.
func (r Record) TotalEnergy() int64 {
	if r.Physics == nil {
		return 0
	}
	return r.Physics.TotalEnergy
}

// MassKg returns the summed payload mass in kilograms.
func (r Record) MassKg() int64 {
	var t float64
	for _, m := range r.PayloadMass {
		t += m
	}
	return int64(math.Round(t * 1000))
}
