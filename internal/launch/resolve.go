package launch

import (
	"github.com/papapumpkin/launchplot/internal/orbit"
	"github.com/papapumpkin/launchplot/internal/record"
)

// Resolve maps a raw block onto a Record and evaluates orbital energy for
// successful launches. Timestamp failures are returned as errors; missing or
// unusable energy data is reported through warnings and leaves Physics nil.
func Resolve(block record.RawBlock, calc *orbit.Calculator) (Record, []Warning, error) {
	f := fieldReader{block: block}

	t, err := ParseTime(f.get(KeyTime))
	if err != nil {
		return Record{}, nil, err
	}

	operator := firstOf(f.keys(KeyPayloadOperator, KeyLaunchAndOperate, KeyLaunchAndPayload)...)
	info := firstOf(
		f.key(KeyPayloadInfo),
		f.joined(PayloadInfoSeparator, KeyPrimaryPayload, KeySecondaryPayload),
	)

	result := f.chain(KeyResult, KeyRecoveryResult)

	r := Record{
		ID:              f.get(KeyID),
		Manufacturer:    f.get(KeyManufacturer),
		Location:        f.get(KeyLocation),
		MissionName:     f.chain(KeyMissionName, KeyTitledName, KeyMissionCode),
		FlightNumber:    f.get(KeyFlightNumber),
		LaunchProvider:  f.chain(KeyLaunchProvider, KeyLaunchAndPayload, KeyLaunchAndOperate),
		PayloadOperator: operator,
		PayloadDeveloper: firstOf(
			f.key(KeyPayloadDeveloper),
			f.key(KeyLaunchAndPayload),
			func() string { return operator },
		),
		PayloadInfo:    info,
		PayloadMass:    payloadMass(f.get(KeyPayloadMass), info),
		Launcher:       f.get(KeyLauncher),
		Orbit:          f.chain(OrbitKeys...),
		Success:        result == SuccessToken,
		Time:           t,
		Remarks:        f.get(KeyRemarks),
		RecoveryResult: f.get(KeyRecoveryResult),
		RecoveryShip:   f.get(KeyRecoveryShip),
		FailureReason:  f.get(KeyFailureReason),
	}

	var warnings []Warning
	if r.LaunchProvider == "" {
		warnings = append(warnings, newWarning(WarnMissingProvider, r, ""))
	}
	if !r.Success {
		return r, warnings, nil
	}

	if r.Orbit == "" {
		return r, append(warnings, newWarning(WarnMissingOrbit, r, "")), nil
	}
	res, err := calc.Evaluate(r.Orbit, r.PayloadMass)
	if err != nil {
		return r, append(warnings, newWarning(WarnUnparseableOrbit, r, err.Error())), nil
	}
	r.Physics = &res
	if res.TotalEnergy == 0 {
		warnings = append(warnings, newWarning(WarnZeroEnergy, r, ""))
	}
	return r, warnings, nil
}
