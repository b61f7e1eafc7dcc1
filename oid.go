package pgcodec

// PostgreSQL oids for the types handled by this package
const (
	Int8OID         = 20
	Int4OID         = 23
	XIDOID          = 28
	XMLOID          = 142
	PointOID        = 600
	LsegOID         = 601
	PathOID         = 602
	BoxOID          = 603
	PolygonOID      = 604
	LineOID         = 628
	CIDROID         = 650
	CircleOID       = 718
	Macaddr8OID     = 774
	MacaddrOID      = 829
	InetOID         = 869
	DateOID         = 1082
	TimestampOID    = 1114
	TimestamptzOID  = 1184
	IntervalOID     = 1186
	TimetzOID       = 1266
	NumericOID      = 1700
	TxidSnapshotOID = 2970
	PgLSNOID        = 3220
	TSVectorOID     = 3614
	TSQueryOID      = 3615
	Int4rangeOID    = 3904
	NumrangeOID     = 3906
	TsrangeOID      = 3908
	TstzrangeOID    = 3910
	DaterangeOID    = 3912
	Int8rangeOID    = 3926
	PgSnapshotOID   = 5038
	XID8OID         = 5069
)
