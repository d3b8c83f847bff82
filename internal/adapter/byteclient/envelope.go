package byteclient

// The Core wraps every request and response in an outer object named
// {operation}_request / {operation}_response, carrying an infoTx block with
// the caller's transaction id and a detalle block whose numeric fields travel
// as strings. Field names follow the Core's wire contract.

const (
	opDeposit        = "depositoCta"
	opWithdraw       = "retiroCta"
	opInquireAccount = "consultaCta"
	opTransfer       = "transferCta"
	opInquireLoan    = "consultaPrestamo"
	opLoanPayment    = "pagoPrestamo"
	opReversal       = "reversaPagoPrestamo"
)

type infoTx struct {
	TransactionID string `json:"idTransaccion"`
}

type envelope[T any] struct {
	InfoTx  infoTx `json:"infoTx"`
	Detalle T      `json:"detalle"`
}

type depositDetail struct {
	AccountNumber string `json:"numCuenta"`
	CashAmount    string `json:"montoEfectivo"`
	CheckAmount   string `json:"montoCheque"`
	TotalAmount   string `json:"montoTotal"`
}

type depositResult struct {
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
	AccountNumber string `json:"numCuenta"`
	NewBalance    string `json:"nuevoSaldo"`
}

type withdrawDetail struct {
	AccountNumber string `json:"numCuenta"`
	Amount        string `json:"montoRetiro"`
}

type withdrawResult struct {
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
	AccountNumber string `json:"numCuenta"`
	NewBalance    string `json:"nuevoSaldo"`
}

type inquireAccountDetail struct {
	AccountNumber string `json:"numCuenta"`
}

type inquireAccountResult struct {
	Authorization    string `json:"autorizacion"`
	AccountStatus    string `json:"estadoCuenta"`
	LastMovementDate string `json:"fechaUltMov"`
	TotalBalance     string `json:"saldoTotal"`
	AvailableBalance string `json:"saldoDisponible"`
	ReservedBalance  string `json:"saldoReservas"`
	BlockedBalance   string `json:"saldoBloqueos"`
	ResponseCode     string `json:"codRespuesta"`
	Description      string `json:"descRespuesta"`
}

type transferDetail struct {
	SourceAccount      string `json:"numCuentaOrigen"`
	DestinationAccount string `json:"numCuentaDestino"`
	Amount             string `json:"montoTransferencia"`
}

type transferResult struct {
	Authorization string `json:"autorizacion"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
}

type inquireLoanDetail struct {
	LoanNumber string `json:"numPrestamo"`
}

type inquireLoanResult struct {
	Authorization      string `json:"autorizacion"`
	LoanNumber         string `json:"numPrestamo"`
	PrincipalBalance   string `json:"saldoCapital"`
	InterestBalance    string `json:"saldoInteres"`
	LateFeeBalance     string `json:"saldoMora"`
	TotalBalance       string `json:"saldoTotal"`
	NextPaymentAmount  string `json:"proximoPago"`
	NextPaymentDueDate string `json:"fechaProximoPago"`
	ResponseCode       string `json:"codRespuesta"`
	Description        string `json:"descRespuesta"`
}

type loanPaymentDetail struct {
	LoanNumber    string `json:"numPrestamo"`
	AccountNumber string `json:"numCuenta"`
	DebitAmount   string `json:"montoDebito"`
	CashAmount    string `json:"montoEfectivo"`
	CheckAmount   string `json:"montoCheque"`
	TotalAmount   string `json:"montoTotal"`
}

type loanPaymentResult struct {
	Authorization string `json:"autorizacion"`
	LoanNumber    string `json:"numPrestamo"`
	NewBalance    string `json:"nuevoSaldo"`
	ResponseCode  string `json:"codRespuesta"`
	Description   string `json:"descRespuesta"`
}

type reversalDetail struct {
	LoanNumber            string `json:"numPrestamo"`
	OriginalAuthorization string `json:"autorizacionOriginal"`
	Reason                string `json:"motivo"`
}

type reversalResult struct {
	Authorization  string `json:"autorizacion"`
	LoanNumber     string `json:"numPrestamo"`
	AccountNumber  string `json:"numCuenta"`
	NewBalance     string `json:"nuevoSaldo"`
	AmountReversed string `json:"montoReversado"`
	ResponseCode   string `json:"codRespuesta"`
	Description    string `json:"descRespuesta"`
}
