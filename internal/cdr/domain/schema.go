package domain

// FieldDef names one field of the switch CDR layout. Size is the declared
// width from the switch documentation; lines are pipe-delimited, so the
// width is descriptive only and never used for splitting.
type FieldDef struct {
	Name string
	Size int
}

// Field names referenced by the rating pipeline.
const (
	FieldNetType              = "NETTYPE"
	FieldBillType             = "BILLTYPE"
	FieldAnsDate              = "ANSDATE"
	FieldAnsTime              = "ANSTIME"
	FieldEndDate              = "ENDDATE"
	FieldEndTime              = "ENDTIME"
	FieldConversationTime     = "CONVERSATIONTIME"
	FieldCallerNumber         = "CALLERNUMBER"
	FieldCalledAddressNature  = "CALLEDADDRESSNATURE"
	FieldCalledNumber         = "CALLEDNUMBER"
)

// Schema is the fixed field order of a CDR line.
var Schema = []FieldDef{
	{Name: "NETTYPE", Size: 3},
	{Name: "BILLTYPE", Size: 3},
	{Name: "PARTIALRECORDINDICATOR", Size: 2},
	{Name: "CHARGEPARTYINDICATOR", Size: 2},
	{Name: "ANSDATE", Size: 8},
	{Name: "ANSTIME", Size: 6},
	{Name: "ENDDATE", Size: 8},
	{Name: "ENDTIME", Size: 6},
	{Name: "CONVERSATIONTIME", Size: 8},
	{Name: "CALLERDNSET", Size: 5},
	{Name: "CALLERADDRESSNATURE", Size: 3},
	{Name: "CALLERNUMBER", Size: 20},
	{Name: "CALLEDDNSET", Size: 5},
	{Name: "CALLEDADDRESSNATURE", Size: 3},
	{Name: "CALLEDNUMBER", Size: 20},
	{Name: "CENTREXGROUPNUMBER", Size: 6},
	{Name: "CALLERCTXNUMBER", Size: 6},
	{Name: "CALLEDCTXNUMBER", Size: 6},
	{Name: "TRUNKGROUPIN", Size: 6},
	{Name: "TRUNKGROUPOUT", Size: 6},
	{Name: "CALLERDID", Size: 4},
	{Name: "CALLEDDID", Size: 4},
	{Name: "CALLERCATEGORY", Size: 3},
	{Name: "CALLTYPE", Size: 2},
	{Name: "CONNECTEDNUM", Size: 1},
	{Name: "BERTYPE", Size: 2},
	{Name: "GSVN", Size: 3},
	{Name: "TERMINATIONCODE", Size: 3},
	{Name: "TERMINATINGREASON", Size: 2},
	{Name: "CALLCHARGEAMOUNT", Size: 1},
	{Name: "CALLERSRC", Size: 5},
	{Name: "CALLEDSRC", Size: 5},
	{Name: "SUPPLEMENTARYSERVICETYPE", Size: 5},
	{Name: "CHARGINGCASE", Size: 5},
	{Name: "CONNECTEDADDRESSNATURE", Size: 3},
	{Name: "CONNECTEDNUMBER", Size: 20},
	{Name: "CHARGEDNSET", Size: 5},
	{Name: "CHARGEADDRESSNATURE", Size: 3},
	{Name: "CHARGENUMBER", Size: 20},
	{Name: "BEARERSERVICE", Size: 3},
	{Name: "BEARERMODE", Size: 3},
	{Name: "ISUPINDICATION1", Size: 2},
	{Name: "DIALNUMBER", Size: 32},
	{Name: "PARTIALCOUNTER", Size: 3},
	{Name: "SERVICEID", Size: 3},
	{Name: "CALLEREQUIPMENTTYPE", Size: 3},
	{Name: "CODETYPEVIDEO", Size: 4},
	{Name: "CALLERROAMMODE", Size: 2},
	{Name: "CALLEDROAMMODE", Size: 2},
	{Name: "CALLERNUMBERBEFORECHANGE", Size: 21},
	{Name: "CALLEDNUMBERBEFORECHANGE", Size: 21},
	{Name: "OPC", Size: 10},
	{Name: "DPC", Size: 10},
	{Name: "INCOMINGROUTEID", Size: 33},
	{Name: "OUTGOINGROUTEID", Size: 33},
	{Name: "SWITCHID", Size: 13},
	{Name: "LOCALTIMEZONE", Size: 3},
	{Name: "CALLERTIMEZONE", Size: 3},
	{Name: "CALLEDTIMEZONE", Size: 3},
	{Name: "CALLERPORTNUMBER", Size: 5},
	{Name: "CALLEDPORTNUMBER", Size: 5},
	{Name: "OUTGOINGTRAFFICDISPERSIONID", Size: 5},
	{Name: "INCOMINGTRAFFICDISPERSIONID", Size: 5},
	{Name: "TELESERVICE", Size: 3},
	{Name: "PSTNINDICATOR", Size: 3},
	{Name: "ORGNUMBER", Size: 21},
}
