package blockviz

// Penguin is the ASCII-art picture encrypted by the demo, one source line per
// row. Every line has the same width.
var Penguin = SourceText{
	"                                                                                               ",
	"                                                                                               ",
	"                                                                                               ",
	"                                                                                               ",
	"                                                                                               ",
	"                                      ,/##%%#(*                                                ",
	"                                   (@@@@@@@@@@@@@&/                                            ",
	"                                 (@@@@@@@@@@@@@&%&@@&,                                         ",
	"                                %@@@@@@@@@@@@@@%(#&@@@(                                        ",
	"                               (@@@@@@@@@@@@@@@@@@@@@@@#                                       ",
	"                              .&@@@@@@@@@@@@@@@@@@@@@@@@/                                      ",
	"                              ,@@@@@@&@@@@@@@@@@&&@@@@@@%                                      ",
	"                              ,@@%*,,(@@@@@#*,..,%@@@@@@&.                                     ",
	"                              ,@&./%/ *@@@%. (@#. #@@@@@@,                                     ",
	"                              .&%,@@%(*@@&&,*@@@% /@@@@@@,                                     ",
	"                               &@,/@&(*,**/**%@&, #@@@@@@*                                     ",
	"                               &@&*/***,,,,..,,,*/@@@@@@@(                                     ",
	"                               #&(/**,,,,,..,,,*/*#@@@@@@&                                     ",
	"                               (@%(*,,,,,,,,*//**/%@@&&@@@#                                    ",
	"                               (@&/((//////////*,,(@@@#(#@@/                                   ",
	"                              .&@%,,*((///((/*,,. .#@@@&@@@@(                                  ",
	"                             ,@@@* .,,,,,,,,,,.     #@@@@@@@@#                                 ",
	"                            (@@&,   .,,,,,..         (@@@@@@@@&.                               ",
	"                          ,@@@&.                      %@@@@@@@@@/                              ",
	"                        ,&@@@%.                       *@@@@@@@@@@@(                            ",
	"                       ,@@@@@(*,.     ..       ...,,,,.(@@@@@@@@@@@@,                          ",
	"                      ,@@@@@&*.                    ..,,.,&@@&&@@@@@@@,                         ",
	"                      #@&@@%.                          .,.%@@@@&@@@@@&.                        ",
	"                     *@@@@%.                              .&@%&&&@@@@@%                        ",
	"                    .&@&@%                                 /@@@@@&@@@@@.                       ",
	"                    %@&@&.                                 .&@@@@&@@@@@(                       ",
	"                   %@@@@*                                   %@@@@&@@@@@&.                      ",
	"                 .&@@&@@.           .                       #@@@@&@@@@@@*                      ",
	"                .&@@@%&@            .                       #@@@@@@@@@@@*                      ",
	"                *@@@@&&&            .                       #@@@&@@@@@@@*                      ",
	"                .&%(#&@%            .                      .&@@@@@@@&%@&.                      ",
	"                ***,,,,(@#.         .                   ,,,,#@@@@@@@@&@*                       ",
	"         ..,,,,/**,,,,,,(@@&*                          .*,,*%@@@@@@@@@/,,.                     ",
	"        ********,,,,,,,,,*&@@@(.                      ,,****(%@@@@@/*,*.                       ",
	"       ./*,,,,,,,,,,,,,,,,*%@@@@&*                   .,,*****///////*,,,,,.                    ",
	"        ***,,,,,,,,,,,,,,,,*#@@@@@/                  .,,/***********,,,,,,*,                   ",
	"        ***,,,,,,,,,,,,,,,,,,(@@@@*                   /%/**,,,,,,,,,,,,,,,,,,,.                ",
	"        ***,,,,,,,,,,,,,,,,,,,//                   .(@@%(**,,,,,,,,,,,,,,,,,,,,,               ",
	"       ./**,,,,,,,,,,,,,,,,,,,,*/.              ./&@@@@%(**,,,,,,,,,,,,,,,,,***.               ",
	"       /**,,,,,,,,,,,,,,,,,,,,**/%%/,.     .,/#@@@@@@@@%(**,,,,,,,,,,,,,****.                  ",
	"      .///*******,,,,,,,,,,,,,**(#&@@@@@@@@@@@@@@@@@@@(/*,,,,,,,,****/,                        ",
	"        .,*/(((/////****,,,,**/((#&@@@@@@@@@@@@@@@@@@@&%(//**,,****//*.                        ",
	"                ,*/(##((/////((#%%%*                 .*%#((//////((*                           ",
	"                        *(#%%%#(.                       ,#%%####/.                             ",
	"                                                                                               ",
	"                                                                                               ",
	"                                                                                               ",
}
